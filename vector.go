// Package vector implements a generic dynamic array over an owned buffer.
// Typical usage: build a vector with one of the constructors, append with
// PushBack, and Release it when done to return its bytes to any Budget.
package vector

import (
	"fmt"
	"math"

	"github.com/go-kit/log/level"
)

// Vector is a resizable, contiguous sequence of T. Not goroutine-safe.
//
// Slots [0, Size()) hold live elements; slots [Size(), Capacity()) are
// allocated but hold no meaningful value. The zero value is an empty vector
// with no options.
type Vector[T any] struct {
	buf      Buffer[T]
	size     int
	reallocs int
	cfg      *config
}

// New creates an empty vector. It does not allocate.
func New[T any](opts ...Option) *Vector[T] {
	return &Vector[T]{cfg: newConfig(opts)}
}

// NewSized creates a vector of n zero-valued elements with capacity n.
func NewSized[T any](n int, opts ...Option) (*Vector[T], error) {
	var zero T
	return NewFilled(n, zero, opts...)
}

// NewFilled creates a vector of n copies of value with capacity n.
func NewFilled[T any](n int, value T, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	buf, err := newBuffer[T](n, v.cfg)
	if err != nil {
		return nil, err
	}
	v.buf.Swap(&buf)
	v.size = n
	for i := range v.buf.items {
		v.buf.items[i] = value
	}
	return v, nil
}

// FromSlice creates a vector holding a copy of items, with capacity len(items).
func FromSlice[T any](items []T, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	buf, err := newBuffer[T](len(items), v.cfg)
	if err != nil {
		return nil, err
	}
	v.buf.Swap(&buf)
	v.size = copy(v.buf.items, items)
	return v, nil
}

// Of creates a vector from a literal sequence of elements.
func Of[T any](items ...T) *Vector[T] {
	v, err := FromSlice(items)
	if err != nil {
		// Without a budget the slots of an existing slice always fit.
		panic(err)
	}
	return v
}

// Clone returns a deep copy of v with the same capacity and options.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.cloneWith(v.config())
}

func (v *Vector[T]) cloneWith(cfg *config) (*Vector[T], error) {
	c := &Vector[T]{cfg: cfg}
	buf, err := newBuffer[T](v.Capacity(), cfg)
	if err != nil {
		return nil, err
	}
	c.buf.Swap(&buf)
	c.size = copy(c.buf.items, v.live())
	return c, nil
}

// Move transfers v's buffer, size and options into a new vector.
// Afterwards v is empty with zero capacity.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{buf: v.buf.Take(), size: v.size, reallocs: v.reallocs, cfg: v.cfg}
	v.size, v.reallocs = 0, 0
	return m
}

// CopyFrom replaces the contents of v with a deep copy of src.
//
// The copy is built in full before v is touched, so on error v is unchanged.
// Copying a vector onto itself is a no-op.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	tmp, err := src.cloneWith(v.config())
	if err != nil {
		return err
	}
	v.buf.Swap(&tmp.buf)
	v.size = tmp.size
	tmp.buf.Release()
	return nil
}

// MoveFrom releases v's buffer and takes ownership of src's.
// Afterwards src is empty with zero capacity.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.buf.Release()
	v.buf.Swap(&src.buf)
	v.size, src.size = src.size, 0
	v.reallocs, src.reallocs = src.reallocs, 0
	v.cfg = src.cfg
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int {
	return v.buf.Len()
}

// IsEmpty reports whether the vector holds no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Index returns a reference to element i without checking it against Size.
// The caller must ensure 0 <= i < Size(); other indexes yield a dead slot or
// a runtime panic.
func (v *Vector[T]) Index(i int) *T {
	return v.buf.At(i)
}

// Get returns element i. Like Index, it is unchecked.
func (v *Vector[T]) Get(i int) T {
	return v.buf.items[i]
}

// Set stores x at element i. Like Index, it is unchecked.
func (v *Vector[T]) Set(i int, x T) {
	v.buf.items[i] = x
}

// At returns a reference to element i, or an *OutOfRangeError if i is not in
// [0, Size()).
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, &OutOfRangeError{Index: i, Size: v.size}
	}
	return v.Index(i), nil
}

// Front returns a reference to the first element. The vector must not be empty.
func (v *Vector[T]) Front() *T {
	return v.Index(0)
}

// Back returns a reference to the last element. The vector must not be empty.
func (v *Vector[T]) Back() *T {
	return v.Index(v.size - 1)
}

// Clear drops all elements but keeps the capacity.
func (v *Vector[T]) Clear() {
	v.truncate(0)
}

// Resize sets the number of live elements to n.
//
// Shrinking keeps the capacity. Growing within capacity resets the new
// elements to the zero value. Growing beyond capacity reallocates to exactly
// n slots.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("vector: Resize to negative size %d", n))
	}
	switch {
	case n <= v.size:
		v.truncate(n)
	case n <= v.Capacity():
		clear(v.buf.items[v.size:n])
		v.size = n
	default:
		if err := v.reallocate(n); err != nil {
			return err
		}
		v.size = n
	}
	return nil
}

// Reserve ensures the capacity is at least n, reallocating to exactly n slots
// if it is not. The size is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Capacity() {
		return nil
	}
	return v.reallocate(n)
}

// PushBack appends x. When the vector is full, the capacity doubles (an empty
// vector grows to one slot), which keeps appends amortized O(1).
func (v *Vector[T]) PushBack(x T) error {
	if v.size == v.Capacity() {
		if err := v.reallocate(v.grownCapacity()); err != nil {
			return err
		}
	}
	v.buf.items[v.size] = x
	v.size++
	return nil
}

// Insert places x before element pos and returns the index it now occupies.
// pos must lie in [0, Size()]; inserting at Size() appends.
//
// Growth follows the same doubling policy as PushBack.
func (v *Vector[T]) Insert(pos int, x T) (int, error) {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("vector: Insert position %d out of range [0, %d]", pos, v.size))
	}
	if v.size < v.Capacity() {
		items := v.buf.items
		copy(items[pos+1:v.size+1], items[pos:v.size])
		items[pos] = x
		v.size++
		return pos, nil
	}

	cfg := v.config()
	oldCap, newCap := v.Capacity(), v.grownCapacity()
	buf, err := newBuffer[T](newCap, cfg)
	if err != nil {
		return 0, err
	}
	copy(buf.items, v.buf.items[:pos])
	buf.items[pos] = x
	copy(buf.items[pos+1:], v.buf.items[pos:v.size])
	v.adopt(&buf, oldCap, cfg)
	v.size++
	return pos, nil
}

// PopBack removes the last element. The vector must not be empty.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.truncate(v.size - 1)
}

// Erase removes element pos, shifting later elements left, and returns pos.
// pos must lie in [0, Size()).
func (v *Vector[T]) Erase(pos int) int {
	if pos < 0 || pos >= v.size {
		panic(fmt.Sprintf("vector: Erase position %d out of range [0, %d)", pos, v.size))
	}
	items := v.buf.items
	copy(items[pos:], items[pos+1:v.size])
	v.size--
	var zero T
	items[v.size] = zero
	return pos
}

// Swap exchanges the contents of v and other. It never allocates or fails.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
	v.reallocs, other.reallocs = other.reallocs, v.reallocs
	v.cfg, other.cfg = other.cfg, v.cfg
}

// Release frees the buffer, leaving v empty with zero capacity.
// The vector stays usable; calling Release more than once is safe.
func (v *Vector[T]) Release() {
	v.buf.Release()
	v.size = 0
}

// String formats the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.live())
}

func (v *Vector[T]) live() []T {
	return v.buf.items[:v.size]
}

func (v *Vector[T]) config() *config {
	return v.cfg.orDefault()
}

// truncate shrinks the size to n and zeroes the dead slots so they do not
// keep referents alive.
func (v *Vector[T]) truncate(n int) {
	clear(v.buf.items[n:v.size])
	v.size = n
}

func (v *Vector[T]) grownCapacity() int {
	c := v.Capacity()
	switch {
	case c == 0:
		return 1
	case c > math.MaxInt/2:
		return math.MaxInt
	default:
		return c * 2
	}
}

// reallocate moves the live elements into a buffer of exactly n slots.
func (v *Vector[T]) reallocate(n int) error {
	cfg := v.config()
	oldCap := v.Capacity()
	buf, err := newBuffer[T](n, cfg)
	if err != nil {
		return err
	}
	copy(buf.items, v.live())
	v.adopt(&buf, oldCap, cfg)
	return nil
}

// adopt swaps buf in as the vector's storage and frees the previous buffer.
func (v *Vector[T]) adopt(buf *Buffer[T], oldCap int, cfg *config) {
	v.buf.Swap(buf)
	buf.Release()
	v.reallocs++
	newCap := v.Capacity()
	cfg.recorder.Reallocated(oldCap, newCap)
	level.Debug(cfg.logger).Log("msg", "vector reallocated", "old_capacity", oldCap, "new_capacity", newCap, "bytes", v.buf.Bytes())
}
