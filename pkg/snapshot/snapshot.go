// Package snapshot serves a captured memory image as a types.Memory.
//
// A Snapshot pairs a byte buffer with the base address the bytes were
// captured at, so offline dumps can be scanned with the exact same engine
// and targets as a live process. FromBytes wraps an in-memory buffer (the
// usual path for tests); Open memory-maps a dump file from disk.
package snapshot

import (
	"github.com/joshuapare/scankit/internal/mapfile"
	"github.com/joshuapare/scankit/pkg/types"
)

// Snapshot is an immutable view of one contiguous captured region. It
// implements types.Memory. Concurrent readers are safe; Close must not race
// with Read.
type Snapshot struct {
	base   types.Address
	data   []byte
	unmap  func() error
	closed bool
}

// FromBytes wraps data as a snapshot based at base. The buffer is used
// directly, not copied; the caller must not mutate it while the snapshot is
// in use.
func FromBytes(base types.Address, data []byte) *Snapshot {
	return &Snapshot{base: base, data: data}
}

// Open memory-maps the dump image at path as a snapshot based at base.
func Open(path string, base types.Address) (*Snapshot, error) {
	data, unmap, err := mapfile.Map(path)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "open dump image", Err: err}
	}
	return &Snapshot{base: base, data: data, unmap: unmap}, nil
}

// Close releases the mapping, if any. Further reads fail with ErrClosed.
func (s *Snapshot) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.data = nil
	if s.unmap != nil {
		return s.unmap()
	}
	return nil
}

// Region returns the address range the snapshot covers.
func (s *Snapshot) Region() types.Region {
	return types.Region{Base: s.base, Size: uint64(len(s.data))}
}

// IsValid reports whether addr lies inside the captured range.
func (s *Snapshot) IsValid(addr types.Address) bool {
	if s.closed {
		return false
	}
	return s.Region().Contains(addr)
}

// Read copies up to size bytes starting at addr. Reads that run past the end
// of the captured range return the available prefix; reads starting outside
// it fail with ErrUnmapped.
func (s *Snapshot) Read(addr types.Address, size int) ([]byte, error) {
	if s.closed {
		return nil, types.ErrClosed
	}
	if size <= 0 {
		return []byte{}, nil
	}
	if !s.IsValid(addr) {
		return nil, types.ErrUnmapped
	}
	off := int(addr - s.base)
	avail := len(s.data) - off
	if size > avail {
		size = avail
	}
	out := make([]byte, size)
	copy(out, s.data[off:off+size])
	return out, nil
}
