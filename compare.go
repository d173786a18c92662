package vector

import "cmp"

// Ordering compares vectors lexicographically using less on their elements.
// less must be a strict weak ordering.
//
// All six relations are derived from Less. In particular two vectors are
// Equal when neither is Less than the other, which for elements without a
// total order can differ from element-wise ==.
type Ordering[T any] func(a, b T) bool

// Less reports whether a sorts before b. A proper prefix sorts first.
func (less Ordering[T]) Less(a, b *Vector[T]) bool {
	x, y := a.live(), b.live()
	for i := 0; i < len(x) && i < len(y); i++ {
		if less(x[i], y[i]) {
			return true
		}
		if less(y[i], x[i]) {
			return false
		}
	}
	return len(x) < len(y)
}

func (less Ordering[T]) Equal(a, b *Vector[T]) bool {
	return !less.Less(a, b) && !less.Less(b, a)
}

func (less Ordering[T]) NotEqual(a, b *Vector[T]) bool {
	return !less.Equal(a, b)
}

func (less Ordering[T]) LessEqual(a, b *Vector[T]) bool {
	return less.Equal(a, b) || less.Less(a, b)
}

func (less Ordering[T]) Greater(a, b *Vector[T]) bool {
	return !less.LessEqual(a, b)
}

func (less Ordering[T]) GreaterEqual(a, b *Vector[T]) bool {
	return !less.Less(a, b)
}

// Compare returns -1 if a sorts before b, +1 if after, and 0 otherwise.
func (less Ordering[T]) Compare(a, b *Vector[T]) int {
	switch {
	case less.Less(a, b):
		return -1
	case less.Less(b, a):
		return 1
	default:
		return 0
	}
}

func ordered[T cmp.Ordered]() Ordering[T] {
	return cmp.Less[T]
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[T cmp.Ordered](a, b *Vector[T]) bool { return ordered[T]().Equal(a, b) }

// NotEqual is the negation of Equal.
func NotEqual[T cmp.Ordered](a, b *Vector[T]) bool { return ordered[T]().NotEqual(a, b) }

// Less reports whether a sorts lexicographically before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool { return ordered[T]().Less(a, b) }

// LessEqual reports whether a is Less than or Equal to b.
func LessEqual[T cmp.Ordered](a, b *Vector[T]) bool { return ordered[T]().LessEqual(a, b) }

// Greater reports whether a sorts lexicographically after b.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool { return ordered[T]().Greater(a, b) }

// GreaterEqual reports whether a is Greater than or Equal to b.
func GreaterEqual[T cmp.Ordered](a, b *Vector[T]) bool { return ordered[T]().GreaterEqual(a, b) }

// Compare returns -1, 0 or +1 as a sorts before, with, or after b.
func Compare[T cmp.Ordered](a, b *Vector[T]) int { return ordered[T]().Compare(a, b) }
