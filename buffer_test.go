package vector

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewBuffer(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		isNil  bool
		length int
	}{
		{"zero count", 0, true, 0},
		{"single slot", 1, false, 1},
		{"many slots", 1024, false, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBuffer[int](tt.n)
			require.NoError(t, err)
			require.Equal(t, tt.isNil, b.IsNil())
			require.Equal(t, tt.length, b.Len())
			for i, x := range b.Get() {
				require.Zero(t, x, "slot %d should be zeroed", i)
			}
		})
	}
}

func TestNewBufferNegativeCount(t *testing.T) {
	require.Panics(t, func() { _, _ = NewBuffer[int](-1) })
}

func TestNewBufferTooLarge(t *testing.T) {
	before := ReadAllocStats()

	b, err := NewBuffer[int64](math.MaxInt / 4)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrAllocation))
	require.Nil(t, b)
	require.Equal(t, before.Failures+1, ReadAllocStats().Failures)
}

func TestBufferAt(t *testing.T) {
	b, err := NewBuffer[string](4)
	require.NoError(t, err)

	for i := 0; i < b.Len(); i++ {
		*b.At(i) = string(rune('a' + i))
	}
	require.Equal(t, []string{"a", "b", "c", "d"}, b.Get())

	// At returns a reference into the block, not a copy.
	p := b.At(2)
	*p = "z"
	require.Equal(t, "z", b.Get()[2])
}

func TestBufferRelease(t *testing.T) {
	b, err := NewBuffer[int](3)
	require.NoError(t, err)
	b.Get()[1] = 7

	ticket := b.ticket
	before := ReadAllocStats()
	items := b.Release()
	require.Equal(t, []int{0, 7, 0}, items)
	require.True(t, b.IsNil())
	require.Zero(t, b.Len())
	require.True(t, ticket.released.Load())
	require.GreaterOrEqual(t, ReadAllocStats().Releases, before.Releases+1)

	// Releasing a null buffer hands back nothing.
	require.Nil(t, b.Release())
}

func TestBufferSwap(t *testing.T) {
	a, err := NewBuffer[int](2)
	require.NoError(t, err)
	b, err := NewBuffer[int](5)
	require.NoError(t, err)
	a.Get()[0] = 1
	b.Get()[0] = 2

	aItems, bItems := a.Get(), b.Get()
	a.Swap(b)

	require.Equal(t, 5, a.Len())
	require.Equal(t, 2, b.Len())
	require.Same(t, &bItems[0], &a.Get()[0])
	require.Same(t, &aItems[0], &b.Get()[0])

	// Swapping with a null buffer moves the block across.
	var empty Buffer[int]
	a.Swap(&empty)
	require.True(t, a.IsNil())
	require.Equal(t, 5, empty.Len())
}

func TestBufferMove(t *testing.T) {
	b, err := NewBuffer[int](3)
	require.NoError(t, err)
	items := b.Get()

	ticket := b.ticket

	moved := b.Move()
	require.True(t, b.IsNil())
	require.Equal(t, 3, moved.Len())
	require.Same(t, &items[0], &moved.Get()[0])
	require.Same(t, ticket, moved.ticket)
	require.False(t, ticket.released.Load())

	// Moving a null buffer yields a null buffer.
	require.True(t, b.Move().IsNil())
}

func TestBufferFree(t *testing.T) {
	b, err := NewBuffer[int64](16)
	require.NoError(t, err)

	ticket := b.ticket
	require.Equal(t, uintptr(16*8), ticket.bytes)

	before := ReadAllocStats()
	b.Free()
	after := ReadAllocStats()

	require.True(t, b.IsNil())
	require.Nil(t, b.ticket)
	require.True(t, ticket.released.Load())
	require.GreaterOrEqual(t, after.BytesReleased-before.BytesReleased, uint64(16*8))

	// Freeing twice is a no-op.
	require.NotPanics(t, b.Free)
	require.True(t, b.IsNil())
}

func TestBufferZeroSizedElements(t *testing.T) {
	b, err := NewBuffer[struct{}](math.MaxInt32)
	require.NoError(t, err)
	require.Equal(t, math.MaxInt32, b.Len())
	_ = b.At(b.Len() - 1)
	b.Free()
}
