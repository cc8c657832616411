package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestFit_SequentialAllocs(t *testing.T) {
	fa := NewBestFit(1024)

	off, err := fa.Alloc(100, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, off)

	off, err = fa.Alloc(200, 2)
	require.NoError(t, err)
	assert.Equal(t, 100, off)

	assert.Equal(t, []Region{{Offset: 300, Length: 724}}, fa.FreeExtents())
}

// TestBestFit_ReusesHole tests that a freed hole is reused without touching
// the live region above it.
func TestBestFit_ReusesHole(t *testing.T) {
	fa := NewBestFit(1024)

	_, err := fa.Alloc(100, 1)
	require.NoError(t, err)
	_, err = fa.Alloc(200, 2)
	require.NoError(t, err)
	require.True(t, fa.Free(1))

	off, err := fa.Alloc(50, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, off, "smallest fitting extent is the hole at 0")

	r2, _ := fa.Region(2)
	assert.Equal(t, Region{Offset: 100, Length: 200}, r2)
	assert.Equal(t, []Region{{Offset: 50, Length: 50}, {Offset: 300, Length: 724}}, fa.FreeExtents())
}

// TestBestFit_PicksSmallest tests selection among several holes.
func TestBestFit_PicksSmallest(t *testing.T) {
	fa := NewBestFit(1000)

	// [0,300) [300,400) [400,480) [480,1000)
	_, err := fa.Alloc(300, 1)
	require.NoError(t, err)
	_, err = fa.Alloc(100, 2)
	require.NoError(t, err)
	_, err = fa.Alloc(80, 3)
	require.NoError(t, err)
	_, err = fa.Alloc(520, 4)
	require.NoError(t, err)

	require.True(t, fa.Free(1)) // hole 300 at 0
	require.True(t, fa.Free(3)) // hole 80 at 400

	off, err := fa.Alloc(60, 5)
	require.NoError(t, err)
	assert.Equal(t, 400, off, "80-byte hole is the tightest fit")
}

// TestBestFit_Coalesce tests merging with both neighbours on Free.
func TestBestFit_Coalesce(t *testing.T) {
	fa := NewBestFit(300)

	for pid := 1; pid <= 3; pid++ {
		_, err := fa.Alloc(100, pid)
		require.NoError(t, err)
	}
	assert.Empty(t, fa.FreeExtents())

	require.True(t, fa.Free(1))
	require.True(t, fa.Free(3))
	assert.Equal(t, []Region{{Offset: 0, Length: 100}, {Offset: 200, Length: 100}}, fa.FreeExtents())

	require.True(t, fa.Free(2))
	assert.Equal(t, []Region{{Offset: 0, Length: 300}}, fa.FreeExtents())
	assert.Equal(t, 0, fa.Info().Used)
}

// TestBestFit_Compaction tests that a fragmented but sufficient space is
// compacted instead of refusing the request.
func TestBestFit_Compaction(t *testing.T) {
	fa := NewBestFit(400)

	for pid := 1; pid <= 4; pid++ {
		_, err := fa.Alloc(100, pid)
		require.NoError(t, err)
	}
	require.True(t, fa.Free(1))
	require.True(t, fa.Free(3))

	// 200 free in two 100-byte holes.
	off, err := fa.Alloc(200, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, fa.Compactions())
	assert.Equal(t, 200, off)

	r2, _ := fa.Region(2)
	r4, _ := fa.Region(4)
	assert.Equal(t, Region{Offset: 0, Length: 100}, r2)
	assert.Equal(t, Region{Offset: 100, Length: 100}, r4)
	assert.Empty(t, fa.FreeExtents())
}

func TestBestFit_NoSpace(t *testing.T) {
	fa := NewBestFit(1024)

	_, err := fa.Alloc(600, 1)
	require.NoError(t, err)
	_, err = fa.Alloc(500, 2)
	require.ErrorIs(t, err, ErrNoSpace)
	assert.Equal(t, 0, fa.Compactions(), "aggregate check happens before any compaction")

	require.True(t, fa.Free(1))
	off, err := fa.Alloc(500, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, off)
}

func TestBestFit_Rejects(t *testing.T) {
	fa := NewBestFit(64)

	_, err := fa.Alloc(0, 1)
	require.ErrorIs(t, err, ErrBadSize)
	_, err = fa.Alloc(8, 1)
	require.NoError(t, err)
	_, err = fa.Alloc(8, 1)
	require.ErrorIs(t, err, ErrDuplicate)
	assert.False(t, fa.Free(9))
}
