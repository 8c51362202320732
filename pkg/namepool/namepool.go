// Package namepool resolves 32-bit name identifiers to strings.
//
// Pool reads a chunked name table out of a target address space: the upper
// 16 bits of an identifier select a block, the lower 16 bits an entry slot
// within it. Each entry starts with a 16-bit header packing the byte length
// and a wide-encoding flag, followed by the name bytes — Windows-1252 for
// narrow entries, UTF-16LE for wide ones. This is the layout game engines
// use for their interned-name pools.
//
// Table is the trivial map-backed resolver for static tables and tests.
//
// Both types implement types.Resolver and are safe for concurrent lookups.
package namepool

import (
	"sync"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/scankit/internal/codec"
	"github.com/joshuapare/scankit/pkg/types"
)

const (
	// chunkTableOffset is where the pool header keeps the pointer to its
	// block-pointer array.
	chunkTableOffset = 0x10

	// entry header: length in the high 10 bits, wide flag in bit 0
	headerSize    = 2
	lenShift      = 6
	wideFlag      = 0x1
	maxNameLength = 255

	blockPointerSize = 8
	entrySlotSize    = 2
)

// Pool resolves identifiers against a name pool living at a fixed base
// address in the target address space. Resolved names are cached; the cache
// is guarded so a Pool can back concurrent scans.
type Pool struct {
	mem  types.Memory
	base types.Address

	mu    sync.RWMutex
	cache map[uint32]string
}

// New returns a Pool reading the name table based at base through mem.
func New(mem types.Memory, base types.Address) *Pool {
	return &Pool{mem: mem, base: base, cache: make(map[uint32]string)}
}

// Lookup resolves id to its pool string. It returns ("", false) when the
// identifier points at nothing readable or at a malformed entry.
func (p *Pool) Lookup(id uint32) (string, bool) {
	p.mu.RLock()
	name, ok := p.cache[id]
	p.mu.RUnlock()
	if ok {
		return name, true
	}

	name, ok = p.fetch(id)
	if !ok {
		return "", false
	}

	p.mu.Lock()
	p.cache[id] = name
	p.mu.Unlock()
	return name, true
}

// fetch walks the pool structure for one identifier.
func (p *Pool) fetch(id uint32) (string, bool) {
	block := types.Address(id >> 16)
	slot := types.Address(id & 0xFFFF)

	chunkTable, err := p.readPointer(p.base + chunkTableOffset)
	if err != nil {
		return "", false
	}
	blockAddr, err := p.readPointer(chunkTable + block*blockPointerSize)
	if err != nil || blockAddr == 0 {
		return "", false
	}
	entry := blockAddr + slot*entrySlotSize

	hdr, err := p.readUint16(entry)
	if err != nil {
		return "", false
	}
	length := int(hdr >> lenShift)
	if length == 0 || length >= maxNameLength {
		return "", false
	}

	size := length
	wide := hdr&wideFlag != 0
	if wide {
		size = length * 2
	}
	raw, err := p.mem.Read(entry+headerSize, size)
	if err != nil || len(raw) < size {
		return "", false
	}

	name, err := decodeName(raw, wide)
	if err != nil {
		return "", false
	}
	return name, true
}

func (p *Pool) readPointer(addr types.Address) (types.Address, error) {
	b, err := p.mem.Read(addr, codec.Width64)
	if err != nil {
		return 0, err
	}
	if len(b) < codec.Width64 {
		return 0, types.ErrShortRead
	}
	return types.Address(codec.ReadU64(b, 0)), nil
}

func (p *Pool) readUint16(addr types.Address) (uint16, error) {
	b, err := p.mem.Read(addr, codec.Width16)
	if err != nil {
		return 0, err
	}
	if len(b) < codec.Width16 {
		return 0, types.ErrShortRead
	}
	return codec.ReadU16(b, 0), nil
}

// decodeName converts raw entry bytes into UTF-8.
func decodeName(raw []byte, wide bool) (string, error) {
	if wide {
		decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(raw)
		if err != nil {
			return "", err
		}
		return string(decoded), nil
	}
	// Fast path: ASCII is identical in Windows-1252 and UTF-8.
	if isASCII(raw) {
		return string(raw), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// Table is a static identifier-to-name map. The nil map resolves nothing.
type Table map[uint32]string

// Lookup implements types.Resolver.
func (t Table) Lookup(id uint32) (string, bool) {
	name, ok := t[id]
	return name, ok
}
