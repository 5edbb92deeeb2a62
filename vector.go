package vector

import (
	"fmt"
	"iter"
	"math"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Vector is a growable contiguous sequence of T. Not goroutine-safe.
//
// Len counts the live elements, Cap the allocated slots. Slots in
// [Len, Cap) hold zero values or stale elements left behind by shrinking
// operations; they are never exposed through bounds-respecting accessors.
//
// The zero value is an empty vector ready to use. A Vector must not be
// copied; use Clone, Move, Assign or MoveFrom.
type Vector[T any] struct {
	items    Buffer[T]
	size     int
	capacity int
	cfg      config
}

// New returns an empty vector with no storage.
func New[T any](opts ...Option) *Vector[T] {
	return &Vector[T]{cfg: newConfig(opts)}
}

// NewSized returns a vector of n zero-valued elements with capacity n.
func NewSized[T any](n int, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	buf, err := v.alloc(n)
	if err != nil {
		return nil, err
	}
	v.items.Swap(buf)
	v.size, v.capacity = n, n
	return v, nil
}

// NewFilled returns a vector of n copies of value with capacity n.
func NewFilled[T any](n int, value T, opts ...Option) (*Vector[T], error) {
	v, err := NewSized[T](n, opts...)
	if err != nil {
		return nil, err
	}
	items := v.Slice()
	for i := range items {
		items[i] = value
	}
	return v, nil
}

// NewWithCapacity returns an empty vector with n slots reserved.
func NewWithCapacity[T any](n int, opts ...Option) (*Vector[T], error) {
	v := New[T](opts...)
	if err := v.Reserve(n); err != nil {
		return nil, err
	}
	return v, nil
}

// Of returns a vector holding a copy of values, with capacity len(values).
func Of[T any](values ...T) *Vector[T] {
	v := New[T]()
	buf, err := v.alloc(len(values))
	if err != nil {
		// values is already addressable, so its length always fits.
		panic(err)
	}
	copy(buf.Get(), values)
	v.items.Swap(buf)
	v.size, v.capacity = len(values), len(values)
	return v
}

// Clone returns a deep copy of v with the same length, capacity and options.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{cfg: v.cfg}
	buf, err := c.alloc(v.capacity)
	if err != nil {
		return nil, err
	}
	copy(buf.Get(), v.Slice())
	c.items.Swap(buf)
	c.size, c.capacity = v.size, v.capacity
	return c, nil
}

// Move transfers v's storage into a new vector in O(1).
// v is left empty with no storage; its options stay with it.
func (v *Vector[T]) Move() *Vector[T] {
	dst := &Vector[T]{cfg: v.cfg}
	dst.MoveFrom(v)
	return dst
}

// Assign replaces the contents of v with a copy of src, taking src's
// capacity. On error v is left unchanged. Assigning v to itself is a no-op.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if v == src {
		return nil
	}
	buf, err := v.alloc(src.capacity)
	if err != nil {
		return err
	}
	copy(buf.Get(), src.Slice())
	v.items.Swap(buf)
	buf.Free()
	v.size, v.capacity = src.size, src.capacity
	return nil
}

// MoveFrom frees v's storage and takes over src's in O(1).
// src is left empty with no storage. Moving v into itself is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.items.Free()
	v.items.Swap(&src.items)
	v.size, src.size = src.size, 0
	v.capacity, src.capacity = src.capacity, 0
}

// Len returns the number of elements in v.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots allocated for v.
func (v *Vector[T]) Cap() int {
	return v.capacity
}

// IsEmpty reports whether v holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.size == 0
}

// Slice returns the live elements as a slice sharing v's storage.
// The slice is capped at Len, and is invalidated by any operation that
// reallocates.
func (v *Vector[T]) Slice() []T {
	return v.items.Get()[:v.size:v.size]
}

// All returns an iterator over indexes and values of the live elements.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.items.At(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the live elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.items.At(i)) {
				return
			}
		}
	}
}

// Index returns a pointer to element i without bounds checking.
// The caller must ensure 0 <= i < Len(); debug builds assert it.
func (v *Vector[T]) Index(i int) *T {
	assertf(i >= 0 && i < v.size, "index %d out of range [0, %d)", i, v.size)
	return v.items.At(i)
}

// Get returns element i. Same contract as Index.
func (v *Vector[T]) Get(i int) T {
	return *v.Index(i)
}

// Set stores x at element i. Same contract as Index.
func (v *Vector[T]) Set(i int, x T) {
	*v.Index(i) = x
}

// At returns a pointer to element i, or an error wrapping ErrOutOfRange if
// i is not in [0, Len()).
func (v *Vector[T]) At(i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, errors.Wrapf(ErrOutOfRange, "index %d, size %d", i, v.size)
	}
	return v.items.At(i), nil
}

// Reserve grows the capacity to exactly n if n exceeds it. The length and
// the elements are unchanged. On error v is left unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.capacity {
		return nil
	}
	buf, err := v.alloc(n)
	if err != nil {
		return err
	}
	copy(buf.Get(), v.Slice())
	v.replace(buf, n)
	return nil
}

// Resize sets the length to n.
//
// Shrinking only lowers the length; the dropped elements stay in their
// slots. Growing within the capacity zeroes the newly exposed elements.
// Growing past the capacity reallocates to max(n, 2*Cap()), clamped to the
// capacity limit if one is set, and zeroes the newly exposed elements.
// On error v is left unchanged. Panics if n < 0.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic(fmt.Sprintf("vector: negative size %d", n))
	}
	switch {
	case n <= v.size:
		v.size = n
	case n <= v.capacity:
		clear(v.items.Get()[v.size:n])
		v.size = n
	default:
		newCap := v.grownCapacity(n)
		buf, err := v.alloc(newCap)
		if err != nil {
			return err
		}
		// Fresh blocks are zeroed, so only the live elements need copying.
		copy(buf.Get(), v.Slice())
		v.replace(buf, newCap)
		v.size = n
	}
	return nil
}

// PushBack appends x, growing the storage if needed.
func (v *Vector[T]) PushBack(x T) error {
	if err := v.Resize(v.size + 1); err != nil {
		return err
	}
	*v.items.At(v.size - 1) = x
	return nil
}

// PopBack removes the last element. It is a no-op on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size > 0 {
		v.size--
	}
}

// Insert places x at index pos, shifting the elements from pos onwards one
// slot to the right, and returns pos. pos == Len() appends.
// Panics if pos is not in [0, Len()]; unlike Index, this check is always on.
func (v *Vector[T]) Insert(pos int, x T) (int, error) {
	if pos < 0 || pos > v.size {
		panic(fmt.Sprintf("vector: insert position %d out of range [0, %d]", pos, v.size))
	}
	// pos is an index, so it stays valid across a reallocation.
	if err := v.Resize(v.size + 1); err != nil {
		return 0, err
	}
	items := v.items.Get()
	// copy handles the overlap as a backward move.
	copy(items[pos+1:v.size], items[pos:v.size-1])
	*v.items.At(pos) = x
	return pos, nil
}

// Erase removes the element at pos, shifting the following elements one
// slot to the left, and returns pos, which now holds the element that
// followed the erased one (or equals Len() if the last one was erased).
// Panics if pos is not in [0, Len()); unlike Index, this check is always on.
func (v *Vector[T]) Erase(pos int) int {
	if pos < 0 || pos >= v.size {
		panic(fmt.Sprintf("vector: erase position %d out of range [0, %d)", pos, v.size))
	}
	items := v.items.Get()
	copy(items[pos:v.size-1], items[pos+1:v.size])
	v.size--
	return pos
}

// Clear removes all elements. The capacity is kept.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Swap exchanges the contents of v and other in O(1).
// Options stay with each vector.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}

// String formats the live elements like a slice.
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Slice())
}

// grownCapacity returns the capacity to reallocate to when n > Cap().
func (v *Vector[T]) grownCapacity(n int) int {
	newCap := n
	if v.capacity <= math.MaxInt/2 {
		newCap = max(n, 2*v.capacity)
	}
	if limit := v.cfg.capacityLimit; limit > 0 && newCap > limit && n <= limit {
		newCap = limit
	}
	return newCap
}

// alloc returns a fresh zeroed buffer of n slots, honoring the capacity
// limit.
func (v *Vector[T]) alloc(n int) (*Buffer[T], error) {
	if limit := v.cfg.capacityLimit; limit > 0 && n > limit {
		allocStats.failures.Inc()
		err := errors.Wrapf(ErrAllocation, "capacity %d exceeds limit %d", n, limit)
		level.Warn(v.cfg.log()).Log("msg", "vector allocation refused", "capacity", n, "err", err)
		return nil, err
	}
	buf, err := NewBuffer[T](n)
	if err != nil {
		level.Warn(v.cfg.log()).Log("msg", "vector allocation failed", "capacity", n, "err", err)
		return nil, err
	}
	return buf, nil
}

// replace swaps buf in as the backing storage and frees the old block.
func (v *Vector[T]) replace(buf *Buffer[T], newCap int) {
	level.Debug(v.cfg.log()).Log("msg", "vector storage reallocated", "len", v.size, "old_capacity", v.capacity, "new_capacity", newCap)
	v.items.Swap(buf)
	buf.Free()
	v.capacity = newCap
}
