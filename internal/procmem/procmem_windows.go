//go:build windows

package procmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/scankit/pkg/types"
)

// winProcess reads a target through ReadProcessMemory, with VirtualQueryEx
// providing the region map.
type winProcess struct {
	handle windows.Handle
	pid    int
}

func open(pid int) (Process, error) {
	access := uint32(windows.PROCESS_QUERY_INFORMATION | windows.PROCESS_VM_READ)
	handle, err := windows.OpenProcess(access, false, uint32(pid))
	if err != nil {
		return nil, &types.Error{
			Kind: types.ErrKindAttach,
			Msg:  fmt.Sprintf("attach to pid %d", pid),
			Err:  err,
		}
	}
	return &winProcess{handle: handle, pid: pid}, nil
}

func (p *winProcess) Pid() int { return p.pid }

func (p *winProcess) Close() error {
	if p.handle == 0 {
		return nil
	}
	err := windows.CloseHandle(p.handle)
	p.handle = 0
	return err
}

func (p *winProcess) Regions() ([]types.MappedRegion, error) {
	if p.handle == 0 {
		return nil, types.ErrClosed
	}

	var out []types.MappedRegion
	var addr uintptr
	for {
		var mbi windows.MemoryBasicInformation
		err := windows.VirtualQueryEx(p.handle, addr, &mbi, unsafe.Sizeof(mbi))
		if err != nil {
			break // past the last queryable address
		}
		if mbi.RegionSize == 0 {
			break
		}
		if mbi.State == windows.MEM_COMMIT {
			out = append(out, types.MappedRegion{
				Region: types.Region{
					Base: types.Address(mbi.BaseAddress),
					Size: uint64(mbi.RegionSize),
				},
				Readable:   protectReadable(mbi.Protect),
				Writable:   protectWritable(mbi.Protect),
				Executable: protectExecutable(mbi.Protect),
			})
		}
		next := mbi.BaseAddress + mbi.RegionSize
		if next <= addr {
			break // address space wrapped
		}
		addr = next
	}
	return out, nil
}

func (p *winProcess) IsValid(addr types.Address) bool {
	if p.handle == 0 {
		return false
	}
	var mbi windows.MemoryBasicInformation
	if err := windows.VirtualQueryEx(p.handle, uintptr(addr), &mbi, unsafe.Sizeof(mbi)); err != nil {
		return false
	}
	return mbi.State == windows.MEM_COMMIT && protectReadable(mbi.Protect)
}

func (p *winProcess) Read(addr types.Address, size int) ([]byte, error) {
	if p.handle == 0 {
		return nil, types.ErrClosed
	}
	if size <= 0 {
		return []byte{}, nil
	}

	buf := make([]byte, size)
	var done uintptr
	err := windows.ReadProcessMemory(p.handle, uintptr(addr), &buf[0], uintptr(size), &done)
	if err != nil {
		return nil, &types.Error{
			Kind: types.ErrKindRead,
			Msg:  fmt.Sprintf("read %d bytes at %s from pid %d", size, addr, p.pid),
			Err:  err,
		}
	}
	return buf[:done], nil
}

func protectReadable(protect uint32) bool {
	if protect&windows.PAGE_GUARD != 0 || protect&windows.PAGE_NOACCESS != 0 {
		return false
	}
	const readable = windows.PAGE_READONLY | windows.PAGE_READWRITE | windows.PAGE_WRITECOPY |
		windows.PAGE_EXECUTE_READ | windows.PAGE_EXECUTE_READWRITE | windows.PAGE_EXECUTE_WRITECOPY
	return protect&readable != 0
}

func protectWritable(protect uint32) bool {
	if protect&windows.PAGE_GUARD != 0 {
		return false
	}
	const writable = windows.PAGE_READWRITE | windows.PAGE_WRITECOPY |
		windows.PAGE_EXECUTE_READWRITE | windows.PAGE_EXECUTE_WRITECOPY
	return protect&writable != 0
}

func protectExecutable(protect uint32) bool {
	const executable = windows.PAGE_EXECUTE | windows.PAGE_EXECUTE_READ |
		windows.PAGE_EXECUTE_READWRITE | windows.PAGE_EXECUTE_WRITECOPY
	return protect&executable != 0
}
