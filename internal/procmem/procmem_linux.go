//go:build linux

package procmem

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/scankit/pkg/types"
)

// linuxProcess reads a target through process_vm_readv, with /proc/<pid>/maps
// providing the region map.
type linuxProcess struct {
	pid int

	mu      sync.Mutex
	regions []types.MappedRegion // cached; refreshed when a lookup misses
	closed  bool
}

func open(pid int) (Process, error) {
	if _, err := os.Stat(fmt.Sprintf("/proc/%d", pid)); err != nil {
		return nil, &types.Error{
			Kind: types.ErrKindAttach,
			Msg:  fmt.Sprintf("attach to pid %d", pid),
			Err:  err,
		}
	}
	return &linuxProcess{pid: pid}, nil
}

func (p *linuxProcess) Pid() int { return p.pid }

func (p *linuxProcess) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.regions = nil
	return nil
}

func (p *linuxProcess) Regions() ([]types.MappedRegion, error) {
	f, err := os.Open(fmt.Sprintf("/proc/%d/maps", p.pid))
	if err != nil {
		return nil, &types.Error{
			Kind: types.ErrKindAttach,
			Msg:  fmt.Sprintf("read maps of pid %d", p.pid),
			Err:  err,
		}
	}
	defer f.Close()

	var out []types.MappedRegion
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if r, ok := parseMapsLine(sc.Text()); ok {
			out = append(out, r)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "parse maps", Err: err}
	}

	p.mu.Lock()
	if !p.closed {
		p.regions = out
	}
	p.mu.Unlock()
	return out, nil
}

// parseMapsLine decodes one /proc/<pid>/maps line, e.g.
//
//	7f5c4000-7f5c7000 r-xp 00000000 08:01 123456 /usr/lib/libc.so.6
func parseMapsLine(line string) (types.MappedRegion, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return types.MappedRegion{}, false
	}
	bounds := strings.SplitN(fields[0], "-", 2)
	if len(bounds) != 2 {
		return types.MappedRegion{}, false
	}
	lo, err := strconv.ParseUint(bounds[0], 16, 64)
	if err != nil {
		return types.MappedRegion{}, false
	}
	hi, err := strconv.ParseUint(bounds[1], 16, 64)
	if err != nil || hi < lo {
		return types.MappedRegion{}, false
	}
	perms := fields[1]
	mr := types.MappedRegion{
		Region:     types.Region{Base: types.Address(lo), Size: hi - lo},
		Readable:   strings.Contains(perms, "r"),
		Writable:   strings.Contains(perms, "w"),
		Executable: strings.Contains(perms, "x"),
	}
	if len(fields) >= 6 {
		mr.Path = strings.Join(fields[5:], " ")
	}
	return mr, true
}

func (p *linuxProcess) IsValid(addr types.Address) bool {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false
	}
	cached := p.regions
	p.mu.Unlock()

	if containsReadable(cached, addr) {
		return true
	}
	// Miss: the map may have changed since the last enumeration.
	regions, err := p.Regions()
	if err != nil {
		return false
	}
	return containsReadable(regions, addr)
}

func containsReadable(regions []types.MappedRegion, addr types.Address) bool {
	for _, r := range regions {
		if r.Readable && r.Contains(addr) {
			return true
		}
	}
	return false
}

func (p *linuxProcess) Read(addr types.Address, size int) ([]byte, error) {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return nil, types.ErrClosed
	}
	if size <= 0 {
		return []byte{}, nil
	}

	buf := make([]byte, size)
	local := make([]unix.Iovec, 1)
	local[0].Base = &buf[0]
	local[0].SetLen(size)
	remote := []unix.RemoteIovec{{Base: uintptr(addr), Len: size}}

	n, err := unix.ProcessVMReadv(p.pid, local, remote, 0)
	if err != nil {
		return nil, &types.Error{
			Kind: types.ErrKindRead,
			Msg:  fmt.Sprintf("read %d bytes at %s from pid %d", size, addr, p.pid),
			Err:  err,
		}
	}
	return buf[:n], nil
}
