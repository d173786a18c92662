package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuffer(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		bytes int64
	}{
		{"no storage", 0, 0},
		{"one slot", 1, 8},
		{"many slots", 100, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBuffer[int64](tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.n, b.Len())
			assert.Equal(t, tt.bytes, b.Bytes())
			for i := range tt.n {
				assert.Equal(t, int64(0), *b.At(i))
			}
		})
	}

	empty, err := NewBuffer[int](0)
	require.NoError(t, err)
	assert.Nil(t, empty.Slots(), "zero slots must not allocate")
}

func TestBufferSwap(t *testing.T) {
	a, err := NewBuffer[int](2)
	require.NoError(t, err)
	b, err := NewBuffer[int](5)
	require.NoError(t, err)
	*a.At(0) = 7

	a.Swap(&b)
	assert.Equal(t, 5, a.Len())
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 7, *b.At(0))
}

func TestBufferTake(t *testing.T) {
	a, err := NewBuffer[string](3)
	require.NoError(t, err)
	*a.At(2) = "x"

	b := a.Take()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, int64(0), a.Bytes())
	assert.Nil(t, a.Slots())
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, "x", *b.At(2))
}

func TestBufferRelease(t *testing.T) {
	budget := NewBudget(0)
	b, err := NewBuffer[int32](10, WithBudget(budget))
	require.NoError(t, err)
	assert.Equal(t, int64(40), budget.Usage())

	b.Release()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, int64(0), budget.Usage())

	b.Release()
	assert.Equal(t, int64(0), budget.Usage(), "second Release must be a no-op")
}

func TestBufferReleaseAfterSwapUsesOwnBudget(t *testing.T) {
	ba, bb := NewBudget(0), NewBudget(0)
	a, err := NewBuffer[int64](1, WithBudget(ba))
	require.NoError(t, err)
	b, err := NewBuffer[int64](4, WithBudget(bb))
	require.NoError(t, err)

	a.Swap(&b)
	a.Release()
	assert.Equal(t, int64(8), ba.Usage())
	assert.Equal(t, int64(0), bb.Usage())

	b.Release()
	assert.Equal(t, int64(0), ba.Usage())
}
