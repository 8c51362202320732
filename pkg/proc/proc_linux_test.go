//go:build linux

package proc_test

import (
	"os"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/scankit/internal/codec"
	"github.com/joshuapare/scankit/pkg/proc"
	"github.com/joshuapare/scankit/pkg/scan"
	"github.com/joshuapare/scankit/pkg/types"
)

// arena is a live buffer the tests scan inside their own process.
var arena [64]byte

func arenaRegion() types.Region {
	return types.Region{
		Base: types.Address(uintptr(unsafe.Pointer(&arena[0]))),
		Size: uint64(len(arena)),
	}
}

func TestAttachSelfAndScan(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping live-process test in short mode")
	}
	p, err := proc.Attach(os.Getpid())
	require.NoError(t, err)
	defer p.Close()

	reg := arenaRegion()
	codec.PutUint(arena[:], 24, codec.Width32, 0xC0FFEE)

	res := scan.Find(reg, scan.Exact(0xC0FFEE, codec.Width32), p, nil)
	require.True(t, res.Found)
	assert.Equal(t, reg.Base+24, res.Addr)
}

func TestTypedReads(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping live-process test in short mode")
	}
	p, err := proc.Attach(os.Getpid())
	require.NoError(t, err)
	defer p.Close()

	reg := arenaRegion()
	codec.PutUint(arena[:], 0, codec.Width64, 0x1122334455667788)
	codec.PutUint(arena[:], 8, codec.Width32, 0xDEADBEEF)

	ptr, err := p.ReadPointer(reg.Base)
	require.NoError(t, err)
	assert.Equal(t, types.Address(0x1122334455667788), ptr)

	v, err := p.ReadUint32(reg.Base + 8)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), v)
}

func TestAttachMissingProcess(t *testing.T) {
	_, err := proc.Attach(1 << 30)
	require.Error(t, err)

	var terr *types.Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, types.ErrKindAttach, terr.Kind)
}
