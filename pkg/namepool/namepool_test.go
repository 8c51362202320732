package namepool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/scankit/internal/codec"
	"github.com/joshuapare/scankit/pkg/namepool"
	"github.com/joshuapare/scankit/pkg/snapshot"
	"github.com/joshuapare/scankit/pkg/types"
)

const poolBase = types.Address(0x200000)

// buildPool assembles a minimal two-block name pool image:
//
//	base+0x10  -> pointer to the chunk table
//	base+0x100 -> chunk table: block 0 at base+0x200, block 1 unallocated
//	base+0x200 -> block 0 entries (slot = byte offset / 2)
func buildPool(t *testing.T) *snapshot.Snapshot {
	t.Helper()
	buf := make([]byte, 0x1000)

	codec.PutUint(buf, 0x10, codec.Width64, uint64(poolBase)+0x100)
	codec.PutUint(buf, 0x100, codec.Width64, uint64(poolBase)+0x200)
	codec.PutUint(buf, 0x108, codec.Width64, 0) // block 1: never allocated

	putNarrow := func(off int, s string) {
		codec.PutUint(buf, off, codec.Width16, uint64(len(s))<<6)
		copy(buf[off+2:], s)
	}

	putNarrow(0x200, "Foo")    // slot 0
	putNarrow(0x210, "FooBar") // slot 8
	putNarrow(0x230, "Caf\xe9") // slot 24, Windows-1252 é

	// slot 16: wide entry "Hi" (UTF-16LE)
	codec.PutUint(buf, 0x220, codec.Width16, 2<<6|1)
	copy(buf[0x222:], []byte{'H', 0, 'i', 0})

	// slot 32 left zeroed: header decodes to length 0

	return snapshot.FromBytes(poolBase, buf)
}

func TestLookupNarrow(t *testing.T) {
	pool := namepool.New(buildPool(t), poolBase)

	name, ok := pool.Lookup(0)
	require.True(t, ok)
	assert.Equal(t, "Foo", name)

	name, ok = pool.Lookup(8)
	require.True(t, ok)
	assert.Equal(t, "FooBar", name)
}

func TestLookupWide(t *testing.T) {
	pool := namepool.New(buildPool(t), poolBase)

	name, ok := pool.Lookup(16)
	require.True(t, ok)
	assert.Equal(t, "Hi", name)
}

func TestLookupWindows1252(t *testing.T) {
	pool := namepool.New(buildPool(t), poolBase)

	name, ok := pool.Lookup(24)
	require.True(t, ok)
	assert.Equal(t, "Café", name)
}

func TestLookupMisses(t *testing.T) {
	pool := namepool.New(buildPool(t), poolBase)

	_, ok := pool.Lookup(32)
	assert.False(t, ok, "zero-length entry")

	_, ok = pool.Lookup(1 << 16)
	assert.False(t, ok, "unallocated block")

	_, ok = pool.Lookup(20 << 16)
	assert.False(t, ok, "high block with no pointer")
}

func TestLookupUnreadablePool(t *testing.T) {
	// Snapshot that does not cover the pool base at all.
	snap := snapshot.FromBytes(0x9000, make([]byte, 0x10))
	pool := namepool.New(snap, poolBase)

	_, ok := pool.Lookup(0)
	assert.False(t, ok)
}

// countingMemory wraps a Memory and counts Read calls.
type countingMemory struct {
	types.Memory
	reads int
}

func (c *countingMemory) Read(addr types.Address, size int) ([]byte, error) {
	c.reads++
	return c.Memory.Read(addr, size)
}

func TestLookupCaches(t *testing.T) {
	mem := &countingMemory{Memory: buildPool(t)}
	pool := namepool.New(mem, poolBase)

	name, ok := pool.Lookup(0)
	require.True(t, ok)
	require.Equal(t, "Foo", name)

	before := mem.reads
	name, ok = pool.Lookup(0)
	require.True(t, ok)
	assert.Equal(t, "Foo", name)
	assert.Equal(t, before, mem.reads, "second lookup must come from the cache")
}

func TestTable(t *testing.T) {
	tbl := namepool.Table{7: "Seven"}

	name, ok := tbl.Lookup(7)
	require.True(t, ok)
	assert.Equal(t, "Seven", name)

	_, ok = tbl.Lookup(8)
	assert.False(t, ok)

	var empty namepool.Table
	_, ok = empty.Lookup(7)
	assert.False(t, ok)
}
