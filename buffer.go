package vector

// noCopy may be embedded into structs which must not be copied after first use.
// See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer is an exclusively owned, contiguous block of a fixed number of slots.
//
// A Buffer tracks nothing but its own slot count; which slots hold meaningful
// values is the owner's concern. Ownership moves only through Swap and Take;
// copying a Buffer value is rejected by go vet.
type Buffer[T any] struct {
	_     noCopy
	items []T
	bytes int64
	cfg   *config
}

// NewBuffer allocates a buffer of exactly n zeroed slots.
// A zero n yields a buffer that owns no storage.
func NewBuffer[T any](n int, opts ...Option) (Buffer[T], error) {
	return newBuffer[T](n, newConfig(opts))
}

func newBuffer[T any](n int, cfg *config) (Buffer[T], error) {
	items, charged, err := allocSlots[T](n, cfg)
	if err != nil {
		return Buffer[T]{}, err
	}
	return Buffer[T]{items: items, bytes: charged, cfg: cfg}, nil
}

// Len returns the number of slots owned.
func (b *Buffer[T]) Len() int {
	return len(b.items)
}

// Bytes returns the number of bytes charged for the owned slots.
func (b *Buffer[T]) Bytes() int64 {
	return b.bytes
}

// At returns a reference to slot i. There is no bounds contract beyond the
// runtime's own: keeping i meaningful is the caller's job.
func (b *Buffer[T]) At(i int) *T {
	return &b.items[i]
}

// Slots returns the owned slots. The slice aliases the buffer.
func (b *Buffer[T]) Slots() []T {
	return b.items
}

// Swap exchanges owned storage with other. It never allocates or fails.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.items, other.items = other.items, b.items
	b.bytes, other.bytes = other.bytes, b.bytes
	b.cfg, other.cfg = other.cfg, b.cfg
}

// Take moves ownership into the returned buffer and leaves b owning nothing.
func (b *Buffer[T]) Take() Buffer[T] {
	items, bytes, cfg := b.items, b.bytes, b.cfg
	b.items, b.bytes, b.cfg = nil, 0, nil
	return Buffer[T]{items: items, bytes: bytes, cfg: cfg}
}

// Release frees the owned storage. Calling Release more than once is safe.
func (b *Buffer[T]) Release() {
	if b.items == nil {
		return
	}
	freeSlots(b.cfg.orDefault(), b.bytes)
	b.items, b.bytes = nil, 0
}
