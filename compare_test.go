package vector

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderingRelations(t *testing.T) {
	tests := []struct {
		name string
		a, b *Vector[int]
		cmp  int
	}{
		{"last element differs", Of(1, 2, 3), Of(1, 2, 4), -1},
		{"proper prefix", Of(1, 2), Of(1, 2, 3), -1},
		{"equal", Of(1, 2, 3), Of(1, 2, 3), 0},
		{"first element decides", Of(2), Of(1, 9, 9), 1},
		{"both empty", New[int](), New[int](), 0},
		{"empty before non-empty", New[int](), Of(0), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.cmp, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.cmp, Compare(tt.b, tt.a))

			assert.Equal(t, tt.cmp < 0, Less(tt.a, tt.b), "Less")
			assert.Equal(t, tt.cmp <= 0, LessEqual(tt.a, tt.b), "LessEqual")
			assert.Equal(t, tt.cmp > 0, Greater(tt.a, tt.b), "Greater")
			assert.Equal(t, tt.cmp >= 0, GreaterEqual(tt.a, tt.b), "GreaterEqual")
			assert.Equal(t, tt.cmp == 0, Equal(tt.a, tt.b), "Equal")
			assert.Equal(t, tt.cmp != 0, NotEqual(tt.a, tt.b), "NotEqual")
		})
	}
}

func TestOrderingIgnoresSpareCapacity(t *testing.T) {
	a := Of(1, 2)
	b := Of(1, 2, 3)
	b.PopBack()
	_ = a.Reserve(100)
	assert.True(t, Equal(a, b))
}

func TestOrderingCustomLess(t *testing.T) {
	caseless := Ordering[string](func(a, b string) bool {
		return strings.ToLower(a) < strings.ToLower(b)
	})

	a := Of("Go", "Vector")
	b := Of("go", "vector")
	assert.True(t, caseless.Equal(a, b), "equality is derived from the ordering")
	assert.False(t, Equal(a, b))
	assert.True(t, caseless.LessEqual(a, b))
	assert.True(t, caseless.GreaterEqual(a, b))
	assert.False(t, caseless.Less(a, b))
	assert.False(t, caseless.Greater(a, b))
	assert.False(t, caseless.NotEqual(a, b))
	assert.Equal(t, 0, caseless.Compare(a, b))

	assert.True(t, caseless.Less(Of("a"), Of("B")))
}

func TestOrderingNaN(t *testing.T) {
	// NaN is not == to itself, but neither sorts before the other.
	a := Of(1.0, math.NaN())
	b := Of(1.0, math.NaN())
	assert.True(t, Equal(a, b))
	assert.True(t, Less(Of(math.NaN()), Of(0.0)))
}
