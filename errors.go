package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned by checked access when the index is not a live element.
	ErrOutOfRange = errors.New("vector: index out of range")
	// ErrAllocationFailed is returned when storage for a buffer cannot be obtained.
	ErrAllocationFailed = errors.New("vector: allocation failed")
	// ErrMemoryLimitExceeded is returned when a Budget cannot cover an allocation.
	ErrMemoryLimitExceeded = errors.New("vector: memory limit exceeded")
)

// OutOfRangeError reports a checked access outside [0, Size).
//
// It matches ErrOutOfRange under errors.Is.
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("vector: index %d out of range [0, %d)", e.Index, e.Size)
}

func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }

// AllocationError reports a failed buffer allocation.
//
// It matches ErrAllocationFailed under errors.Is. The underlying reason (for
// example ErrMemoryLimitExceeded) can be accessed via errors.Unwrap.
type AllocationError struct {
	Slots int
	Bytes uint64
	cause error
}

func (e *AllocationError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("vector: allocation of %d slots (%d bytes) failed", e.Slots, e.Bytes)
	}
	return fmt.Sprintf("vector: allocation of %d slots (%d bytes) failed: %v", e.Slots, e.Bytes, e.cause)
}

func (e *AllocationError) Is(target error) bool { return target == ErrAllocationFailed }

func (e *AllocationError) Unwrap() error { return e.cause }
