package vector

// CapacityRequest carries a capacity to reserve at construction.
// Create one with ReserveCapacity and pass it to NewReserved.
type CapacityRequest struct {
	capacity int
}

// ReserveCapacity returns a request for n slots. Negative n requests none.
func ReserveCapacity(n int) CapacityRequest {
	if n < 0 {
		n = 0
	}
	return CapacityRequest{capacity: n}
}

// Capacity returns the requested number of slots.
func (r CapacityRequest) Capacity() int {
	return r.capacity
}

// NewReserved creates an empty vector whose buffer already holds
// r.Capacity() slots.
//
//	v, err := vector.NewReserved[int](vector.ReserveCapacity(1024))
func NewReserved[T any](r CapacityRequest, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	buf, err := newBuffer[T](r.Capacity(), v.cfg)
	if err != nil {
		return nil, err
	}
	v.buf.Swap(&buf)
	return v, nil
}
