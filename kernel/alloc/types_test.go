package alloc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{in: "", want: PolicyBump},
		{in: "bump", want: PolicyBump},
		{in: "BUMP", want: PolicyBump},
		{in: "best-fit", want: PolicyBestFit},
		{in: " bestfit ", want: PolicyBestFit},
		{in: "buddy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownPolicy)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	a, err := New(PolicyBump, 1024)
	require.NoError(t, err)
	assert.IsType(t, &BumpAllocator{}, a)
	assert.Equal(t, PolicyBump, a.Policy())

	a, err = New(PolicyBestFit, 2048)
	require.NoError(t, err)
	assert.IsType(t, &BestFitAllocator{}, a)
	assert.Equal(t, 2048, a.Info().Total)

	_, err = New(PolicyBump, 0)
	require.Error(t, err)

	_, err = New("slab", 1024)
	require.ErrorIs(t, err, ErrUnknownPolicy)
}

// TestAlloc_SizeNearMaxInt tests that requests whose sum with Used would
// overflow are refused without touching the accounting.
func TestAlloc_SizeNearMaxInt(t *testing.T) {
	for _, p := range []Policy{PolicyBump, PolicyBestFit} {
		t.Run(string(p), func(t *testing.T) {
			a, err := New(p, 1024)
			require.NoError(t, err)

			_, err = a.Alloc(1, 1)
			require.NoError(t, err)
			before := a.Info()

			for pid, size := range map[int]int{2: math.MaxInt, 3: math.MaxInt - 1, 4: math.MaxInt - 1023} {
				_, err := a.Alloc(size, pid)
				require.ErrorIs(t, err, ErrNoSpace, "size %d", size)
				_, ok := a.Region(pid)
				assert.False(t, ok)
			}
			assert.Equal(t, before, a.Info())
			assert.Equal(t, Info{Total: 1024, Used: 1, Free: 1023}, a.Info())
		})
	}
}
