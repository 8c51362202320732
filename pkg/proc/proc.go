// Package proc attaches to a live process and exposes its address space as
// a types.Memory.
//
// Attach acquires a read-only handle; the OS-specific mechanics (Windows
// ReadProcessMemory/VirtualQueryEx, Linux process_vm_readv and
// /proc/<pid>/maps) live in the internal procmem package. On platforms
// without an implementation, Attach fails with an attach-kind error.
package proc

import (
	"github.com/joshuapare/scankit/internal/codec"
	"github.com/joshuapare/scankit/internal/procmem"
	"github.com/joshuapare/scankit/pkg/types"
)

// Process is an attached live process. It implements types.Memory and adds
// region enumeration and a few typed reads. All methods are safe for
// concurrent use until Close.
type Process struct {
	h procmem.Process
}

// Attach opens pid for reading.
func Attach(pid int) (*Process, error) {
	h, err := procmem.Open(pid)
	if err != nil {
		return nil, err
	}
	return &Process{h: h}, nil
}

// Pid returns the target process id.
func (p *Process) Pid() int { return p.h.Pid() }

// Close releases the underlying handle.
func (p *Process) Close() error { return p.h.Close() }

// Regions enumerates the currently mapped regions of the target.
func (p *Process) Regions() ([]types.MappedRegion, error) { return p.h.Regions() }

// IsValid reports whether addr falls inside a readable mapping.
func (p *Process) IsValid(addr types.Address) bool { return p.h.IsValid(addr) }

// Read snapshots up to size bytes at addr.
func (p *Process) Read(addr types.Address, size int) ([]byte, error) {
	return p.h.Read(addr, size)
}

// ReadPointer reads a 64-bit pointer at addr.
func (p *Process) ReadPointer(addr types.Address) (types.Address, error) {
	b, err := p.h.Read(addr, codec.Width64)
	if err != nil {
		return 0, err
	}
	if len(b) < codec.Width64 {
		return 0, types.ErrShortRead
	}
	return types.Address(codec.ReadU64(b, 0)), nil
}

// ReadUint32 reads a 32-bit little-endian value at addr.
func (p *Process) ReadUint32(addr types.Address) (uint32, error) {
	b, err := p.h.Read(addr, codec.Width32)
	if err != nil {
		return 0, err
	}
	if len(b) < codec.Width32 {
		return 0, types.ErrShortRead
	}
	return codec.ReadU32(b, 0), nil
}
