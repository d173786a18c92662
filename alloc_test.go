package vector

import (
	"errors"
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotBytes(t *testing.T) {
	n, err := slotBytes[int64](10)
	require.NoError(t, err)
	assert.Equal(t, uint64(80), n)

	n, err = slotBytes[struct{}](1 << 20)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), n)

	_, err = slotBytes[int64](-1)
	require.ErrorIs(t, err, errNegativeSlots)

	_, err = slotBytes[int64](math.MaxInt / 4)
	require.ErrorIs(t, err, errSizeOverflow)

	_, err = slotBytes[[64]byte](math.MaxInt)
	require.ErrorIs(t, err, errSizeOverflow)
}

func TestAllocSlots(t *testing.T) {
	items, charged, err := allocSlots[int32](0, defaultConfig)
	require.NoError(t, err)
	assert.Nil(t, items)
	assert.Equal(t, int64(0), charged)

	items, charged, err = allocSlots[int32](16, defaultConfig)
	require.NoError(t, err)
	assert.Len(t, items, 16)
	assert.Equal(t, int64(64), charged)
}

func TestAllocSlotsOverflow(t *testing.T) {
	_, err := NewSized[int64](math.MaxInt / 4)
	require.ErrorIs(t, err, ErrAllocationFailed)
	assert.True(t, errors.Is(err, errSizeOverflow))

	var ae *AllocationError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, math.MaxInt/4, ae.Slots)
}

func TestAllocSlotsRuntimeRefusal(t *testing.T) {
	if bits.UintSize != 64 {
		t.Skip("needs a 64-bit address space")
	}
	// Fits in int64 bytes but exceeds what the runtime will ever map.
	v := New[int64]()
	err := v.Reserve(math.MaxInt >> 5)
	require.ErrorIs(t, err, ErrAllocationFailed)
	assert.Equal(t, 0, v.Capacity())
}

func TestAllocSlotsBudget(t *testing.T) {
	budget := NewBudget(100)
	cfg := newConfig([]Option{WithBudget(budget)})

	_, charged, err := allocSlots[int64](10, cfg)
	require.NoError(t, err)
	assert.Equal(t, int64(80), charged)
	assert.Equal(t, int64(80), budget.Usage())

	_, _, err = allocSlots[int64](3, cfg)
	require.ErrorIs(t, err, ErrAllocationFailed)
	require.ErrorIs(t, err, ErrMemoryLimitExceeded)
	assert.Equal(t, int64(80), budget.Usage(), "failed allocation must not hold budget")

	freeSlots(cfg, charged)
	assert.Equal(t, int64(0), budget.Usage())
}

func TestAllocationErrorMessage(t *testing.T) {
	err := &AllocationError{Slots: 4, Bytes: 32, cause: ErrMemoryLimitExceeded}
	assert.Equal(t, "vector: allocation of 4 slots (32 bytes) failed: vector: memory limit exceeded", err.Error())
	assert.Equal(t, ErrMemoryLimitExceeded, errors.Unwrap(err))

	bare := &AllocationError{Slots: 1, Bytes: 8}
	assert.Equal(t, "vector: allocation of 1 slots (8 bytes) failed", bare.Error())
}
