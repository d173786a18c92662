package vector

import (
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Budget is a byte budget shared by any number of buffers.
// Unlike Vector, a Budget is safe for concurrent use.
//
// All methods handle a nil *Budget gracefully - they become no-ops.
type Budget struct {
	limit int64
	sem   *semaphore.Weighted // nil if unlimited
	used  atomic.Int64
}

// NewBudget creates a Budget that refuses allocations once limitBytes are in use.
// If limitBytes <= 0, usage is only tracked.
func NewBudget(limitBytes int64) *Budget {
	b := &Budget{}
	if limitBytes > 0 {
		b.limit = limitBytes
		b.sem = semaphore.NewWeighted(limitBytes)
	}
	return b
}

// Acquire reserves bytes without blocking.
// Returns ErrMemoryLimitExceeded if the limit would be exceeded.
func (b *Budget) Acquire(bytes int64) error {
	if b == nil || bytes <= 0 {
		return nil
	}
	if b.sem != nil && !b.sem.TryAcquire(bytes) {
		return ErrMemoryLimitExceeded
	}
	b.used.Add(bytes)
	return nil
}

// Release returns previously acquired bytes.
func (b *Budget) Release(bytes int64) {
	if b == nil || bytes <= 0 {
		return
	}
	if b.sem != nil {
		b.sem.Release(bytes)
	}
	b.used.Add(-bytes)
}

// Usage returns the bytes currently acquired.
func (b *Budget) Usage() int64 {
	if b == nil {
		return 0
	}
	return b.used.Load()
}

// Limit returns the configured limit in bytes (0 if unlimited).
func (b *Budget) Limit() int64 {
	if b == nil {
		return 0
	}
	return b.limit
}
