package vector

import (
	"errors"
	"math"
	"math/bits"
	"runtime"
	"unsafe"

	"github.com/go-kit/log/level"
)

var (
	errNegativeSlots = errors.New("negative slot count")
	errSizeOverflow  = errors.New("byte size overflows int64")
)

// slotBytes returns the number of bytes n slots of T occupy.
func slotBytes[T any](n int) (uint64, error) {
	if n < 0 {
		return 0, errNegativeSlots
	}
	var zero T
	hi, total := bits.Mul64(uint64(unsafe.Sizeof(zero)), uint64(n))
	if hi != 0 || total > math.MaxInt64 {
		return total, errSizeOverflow
	}
	return total, nil
}

// allocSlots returns n zeroed slots of T and the bytes charged for them.
// Returns nil if n == 0.
func allocSlots[T any](n int, cfg *config) ([]T, int64, error) {
	if n == 0 {
		return nil, 0, nil
	}
	total, err := slotBytes[T](n)
	if err != nil {
		return nil, 0, allocFailed(cfg, n, total, err)
	}
	charged := int64(total)
	if err := cfg.budget.Acquire(charged); err != nil {
		return nil, 0, allocFailed(cfg, n, total, err)
	}
	items, err := makeSlots[T](n)
	if err != nil {
		cfg.budget.Release(charged)
		return nil, 0, allocFailed(cfg, n, total, err)
	}
	cfg.recorder.Allocated(charged)
	return items, charged, nil
}

// makeSlots converts the runtime's refusal to size a slice into an error.
// Exhausting the heap itself is fatal and cannot be intercepted.
func makeSlots[T any](n int) (items []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			rerr, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			items, err = nil, rerr
		}
	}()
	return make([]T, n), nil
}

// freeSlots returns bytes charged by allocSlots.
func freeSlots(cfg *config, charged int64) {
	if charged <= 0 {
		return
	}
	cfg.budget.Release(charged)
	cfg.recorder.Released(charged)
}

func allocFailed(cfg *config, n int, total uint64, cause error) error {
	cfg.recorder.AllocationFailed()
	level.Warn(cfg.logger).Log("msg", "allocation failed", "slots", n, "bytes", total, "err", cause)
	return &AllocationError{Slots: n, Bytes: total, cause: cause}
}
