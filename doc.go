// Package vector implements a generic dynamic array for Go.
//
// # Overview
//
// A Vector owns a single contiguous Buffer and tracks how many of its slots
// hold live elements (the size) against how many are allocated (the
// capacity). It is useful when code needs:
//
//   - Explicit control over when and how much memory is allocated
//   - Allocation failures reported as errors instead of crashing the process
//   - A byte budget shared between many containers
//   - Growth statistics for capacity planning
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release()
//
//	_ = v.PushBack(1)
//	_ = v.PushBack(2)
//	_, _ = v.Insert(1, 5) // [1 5 2]
//	v.Erase(1)            // [1 2]
//	_ = v.Resize(4)       // [1 2 0 0]
//
//	// Pre-allocate without changing the size
//	r, err := vector.NewReserved[string](vector.ReserveCapacity(128))
//
// # Growth Policy
//
// PushBack and Insert double the capacity when the vector is full (an empty
// vector grows to one slot), so N appends cause O(log N) reallocations.
// Resize and Reserve reallocate to exactly the requested count.
//
// # Indexing
//
// Index, Get and Set are unchecked: the caller must keep the index in
// [0, Size()). At is the checked variant and returns an *OutOfRangeError
// (matching ErrOutOfRange) instead.
//
// # Ownership
//
// A Vector and its Buffer must not be copied by value. Use Clone (or
// CopyFrom) for an independent deep copy, and Move (or MoveFrom) to transfer
// the buffer, which leaves the source empty with zero capacity.
//
// # Thread Safety
//
// Vector is not thread-safe; callers sharing one across goroutines must
// synchronize access themselves. Budget and PrometheusRecorder are safe to
// share between vectors used on different goroutines.
//
// # Memory Accounting
//
// Every buffer allocation may be charged to a Budget:
//
//	budget := vector.NewBudget(64 << 20)
//	v := vector.New[float64](vector.WithBudget(budget))
//	if err := v.Reserve(1 << 30); errors.Is(err, vector.ErrMemoryLimitExceeded) {
//		// v is unchanged
//	}
//
// # Metrics and Monitoring
//
//	m := v.Metrics()
//	fmt.Printf("Reallocations: %d\n", m.Reallocations)
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//
// A Recorder (see NewPrometheusRecorder) and a go-kit logger can be attached
// with WithRecorder and WithLogger.
package vector
