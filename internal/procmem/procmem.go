// Package procmem provides the OS-specific machinery for reading another
// process's memory. The exported entry point is used by the public pkg/proc
// wrapper to obtain a Process without exposing syscall details directly.
package procmem

import "github.com/joshuapare/scankit/pkg/types"

// Process is an attached, readable view of a live process.
type Process interface {
	// Pid returns the target process id.
	Pid() int

	// Regions enumerates the currently mapped regions of the target.
	Regions() ([]types.MappedRegion, error)

	// IsValid reports whether addr falls inside a readable mapping.
	IsValid(addr types.Address) bool

	// Read snapshots up to size bytes at addr. Short reads are possible at
	// mapping boundaries.
	Read(addr types.Address, size int) ([]byte, error)

	// Close releases the process handle.
	Close() error
}

// Open attaches to pid for reading.
func Open(pid int) (Process, error) {
	return open(pid)
}
