//go:build !unix && !windows

// Package mapfile provides platform-specific helpers for memory-mapping
// saved memory-dump images.
package mapfile

import "os"

// Map reads the entire dump image when mmap is not available.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
