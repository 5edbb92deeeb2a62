package vector

import "unsafe"

// noCopy may be embedded into structs which must not be copied after first
// use. It is picked up by the copylocks checker of go vet.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer exclusively owns a contiguous block of T for a count fixed at
// construction. The zero value is a null buffer owning nothing.
//
// A Buffer must not be copied. Ownership moves only through Move, Swap and
// Release.
type Buffer[T any] struct {
	_      noCopy
	items  []T
	ticket *blockTicket
}

// NewBuffer allocates a buffer of n zero-valued elements.
// n == 0 yields a null buffer without allocating. Panics if n < 0.
// Returns an error wrapping ErrAllocation if the block cannot be addressed.
func NewBuffer[T any](n int) (*Buffer[T], error) {
	items, ticket, err := allocBlock[T](n)
	if err != nil {
		return nil, err
	}
	return &Buffer[T]{items: items, ticket: ticket}, nil
}

// At returns a pointer to slot i without bounds checking.
// The caller must ensure 0 <= i < Len(); debug builds assert it.
func (b *Buffer[T]) At(i int) *T {
	assertf(i >= 0 && i < len(b.items), "buffer index %d out of range [0, %d)", i, len(b.items))
	return (*T)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(b.items)), uintptr(i)*sizeOf[T]()))
}

// Get returns the owned block, or nil for a null buffer.
// The buffer keeps ownership.
func (b *Buffer[T]) Get() []T {
	return b.items
}

// Len returns the number of slots in the owned block.
func (b *Buffer[T]) Len() int {
	return len(b.items)
}

// IsNil reports whether the buffer owns no block.
func (b *Buffer[T]) IsNil() bool {
	return b.items == nil
}

// Release relinquishes ownership of the block and returns it.
// The buffer becomes null; the caller is now responsible for the block.
func (b *Buffer[T]) Release() []T {
	items, ticket := b.take()
	ticket.release()
	return items
}

// Swap exchanges the owned blocks of b and other.
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.items, other.items = other.items, b.items
	b.ticket, other.ticket = other.ticket, b.ticket
}

// Move transfers ownership into a new buffer and leaves b null.
func (b *Buffer[T]) Move() *Buffer[T] {
	items, ticket := b.take()
	return &Buffer[T]{items: items, ticket: ticket}
}

// Free drops the owned block. Freeing a null buffer is a no-op.
// A buffer that is dropped without Free is accounted for once the garbage
// collector reclaims its block.
func (b *Buffer[T]) Free() {
	_, ticket := b.take()
	ticket.release()
}

// take nulls the buffer and returns what it held.
func (b *Buffer[T]) take() ([]T, *blockTicket) {
	items, ticket := b.items, b.ticket
	b.items, b.ticket = nil, nil
	return items, ticket
}
