package vector

// Metrics contains statistical information about a vector.
type Metrics struct {
	Size          int     // Live elements
	Capacity      int     // Allocated slots
	Reallocations int     // Buffers adopted by growth since construction
	BytesReserved int64   // Bytes charged for the current buffer
	Utilization   float64 // Ratio of size to capacity (0.0-1.0)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() Metrics {
	return Metrics{
		Size:          v.size,
		Capacity:      v.Capacity(),
		Reallocations: v.reallocs,
		BytesReserved: v.buf.Bytes(),
		Utilization:   v.Utilization(),
	}
}

// Reallocations returns how many times growth replaced the buffer.
func (v *Vector[T]) Reallocations() int {
	return v.reallocs
}

// Utilization returns the ratio of size to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Recorder receives allocation events from vectors and buffers.
// Implementations shared between vectors must be safe for concurrent use.
type Recorder interface {
	// Allocated is called after a buffer of the given size was obtained.
	Allocated(bytes int64)
	// Released is called after a buffer of the given size was freed.
	Released(bytes int64)
	// Reallocated is called when a vector adopts a larger buffer.
	Reallocated(oldCapacity, newCapacity int)
	// AllocationFailed is called when a buffer could not be obtained.
	AllocationFailed()
}

type nopRecorder struct{}

func (nopRecorder) Allocated(int64)      {}
func (nopRecorder) Released(int64)       {}
func (nopRecorder) Reallocated(int, int) {}
func (nopRecorder) AllocationFailed()    {}
