package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/scankit/pkg/snapshot"
	"github.com/joshuapare/scankit/pkg/types"
)

func TestFromBytesRead(t *testing.T) {
	snap := snapshot.FromBytes(0x1000, []byte{1, 2, 3, 4, 5, 6, 7, 8})

	got, err := snap.Read(0x1002, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 4, 5, 6}, got)

	// Owned copy: mutating the result must not touch the snapshot.
	got[0] = 0xFF
	again, err := snap.Read(0x1002, 1)
	require.NoError(t, err)
	assert.Equal(t, byte(3), again[0])
}

func TestReadShortensAtTail(t *testing.T) {
	snap := snapshot.FromBytes(0x1000, []byte{1, 2, 3, 4})

	got, err := snap.Read(0x1002, 16)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 4}, got, "read past the end returns the available prefix")
}

func TestReadOutsideRange(t *testing.T) {
	snap := snapshot.FromBytes(0x1000, []byte{1, 2, 3, 4})

	_, err := snap.Read(0x2000, 4)
	require.ErrorIs(t, err, types.ErrUnmapped)

	_, err = snap.Read(0x0FFF, 4)
	require.ErrorIs(t, err, types.ErrUnmapped, "below base is outside the capture")
}

func TestIsValid(t *testing.T) {
	snap := snapshot.FromBytes(0x1000, make([]byte, 0x10))

	assert.True(t, snap.IsValid(0x1000))
	assert.True(t, snap.IsValid(0x100F))
	assert.False(t, snap.IsValid(0x1010))
	assert.False(t, snap.IsValid(0x0FFF))
}

func TestRegion(t *testing.T) {
	snap := snapshot.FromBytes(0x4000, make([]byte, 0x80))
	assert.Equal(t, types.Region{Base: 0x4000, Size: 0x80}, snap.Region())
}

func TestOpenDumpFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heap.dump")
	want := []byte{0xCA, 0xFE, 0xBA, 0xBE}
	require.NoError(t, os.WriteFile(path, want, 0o644))

	snap, err := snapshot.Open(path, 0x7FF000)
	require.NoError(t, err)
	defer snap.Close()

	got, err := snap.Read(0x7FF000, 4)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := snapshot.Open(filepath.Join(t.TempDir(), "absent.dump"), 0)
	require.Error(t, err)

	var terr *types.Error
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, types.ErrKindFormat, terr.Kind)
}

func TestCloseStopsReads(t *testing.T) {
	snap := snapshot.FromBytes(0x1000, []byte{1, 2, 3, 4})
	require.NoError(t, snap.Close())

	assert.False(t, snap.IsValid(0x1000))
	_, err := snap.Read(0x1000, 4)
	require.ErrorIs(t, err, types.ErrClosed)

	// Close is idempotent.
	require.NoError(t, snap.Close())
}
