package vector

import (
	"runtime"
	"unsafe"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// maxAllocBytes is the largest single block the allocator hands out:
// 2 GiB on 32-bit platforms, 128 TiB on 64-bit ones.
const maxAllocBytes = 1 << (31 + 16*(^uintptr(0)>>63))

// sizeOf returns the size of T in bytes.
func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// blockTicket records the release of one allocated block exactly once,
// whether it is freed explicitly, handed to a caller, or collected.
type blockTicket struct {
	bytes    uintptr
	released atomic.Bool
}

func (t *blockTicket) release() {
	if t != nil && t.released.CompareAndSwap(false, true) {
		allocStats.recordRelease(t.bytes)
	}
}

// allocBlock returns n zero-valued elements of type T and the ticket
// tracking them. Returns a nil block and ticket if n == 0. Panics if n < 0.
func allocBlock[T any](n int) ([]T, *blockTicket, error) {
	if n < 0 {
		panic("vector: negative element count")
	}
	if n == 0 {
		return nil, nil, nil
	}
	size := sizeOf[T]()
	if size != 0 && uintptr(n) > maxAllocBytes/size {
		allocStats.failures.Inc()
		return nil, nil, errors.Wrapf(ErrAllocation, "%d elements of %d bytes", n, size)
	}
	items := make([]T, n)
	ticket := &blockTicket{bytes: uintptr(n) * size}
	allocStats.recordAlloc(ticket.bytes)
	if size != 0 {
		// Dropped owners never call Free; count their block once it is collected.
		runtime.AddCleanup(unsafe.SliceData(items), (*blockTicket).release, ticket)
	}
	return items, ticket, nil
}
