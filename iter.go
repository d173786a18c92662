package vector

import "iter"

// Iterators visit live elements in index order. Any operation that
// reallocates or shifts elements (growth, Insert, Erase, Resize, Clear)
// invalidates iteration in progress and slices returned by Slice.

// All returns an iterator over index/element pairs.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.items[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf.items[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs from the last
// element to the first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf.items[i]) {
				return
			}
		}
	}
}

// Pointers returns an iterator over references to the elements, for
// in-place mutation.
func (v *Vector[T]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, &v.buf.items[i]) {
				return
			}
		}
	}
}

// Slice returns the live elements. The slice aliases the vector; its
// capacity is clipped so appending to it never writes into the vector.
func (v *Vector[T]) Slice() []T {
	return v.buf.items[:v.size:v.size]
}
