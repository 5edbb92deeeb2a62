// Package vector implements a growable contiguous sequence (dynamic array)
// with explicit capacity management.
//
// # Overview
//
// A Vector keeps its elements in one contiguous block owned by a Buffer. The
// logical length (Len) is tracked separately from the number of allocated
// slots (Cap), so callers can reserve storage up front, shrink without
// giving memory back, and append in amortized O(1):
//
//   - Appending past the capacity reallocates to max(n, 2*Cap())
//   - Shrinking only lowers the length; storage is reused
//   - Clear keeps the capacity for the next round of appends
//
// # Basic Usage
//
//	v := vector.New[int]()
//	for i := range 10 {
//		if err := v.PushBack(i); err != nil {
//			return err
//		}
//	}
//
//	v.Insert(1, 99)  // {0, 99, 1, 2, ...}
//	v.Erase(0)       // {99, 1, 2, ...}
//	x := v.Get(0)    // unchecked
//	p, err := v.At(42) // checked, wraps ErrOutOfRange
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Construction
//
//	vector.New[T]()                 // empty, no storage
//	vector.NewSized[T](n)           // n zero values
//	vector.NewFilled[T](n, x)       // n copies of x
//	vector.NewWithCapacity[T](n)    // empty, n slots reserved
//	vector.Of(1, 2, 3)              // from literal values
//	v.Clone()                       // deep copy, same capacity
//	v.Move()                        // O(1) transfer, v left empty
//
// # Ownership
//
// A Vector and its Buffer must not be copied by value; go vet reports such
// copies. Storage moves between containers with Move, MoveFrom and Swap,
// and is copied with Clone and Assign. Assign uses copy-and-swap: if the new
// block cannot be allocated, the destination is left untouched.
//
// Slices returned by Slice, and pointers returned by Index and At, refer to
// the current block and are invalidated by any operation that reallocates
// (Reserve, Resize, PushBack, Insert, Assign).
//
// # Errors
//
// Only two failures are reported as errors:
//
//   - ErrAllocation: storage for the requested capacity cannot be obtained,
//     either because it exceeds the addressable size or the configured
//     WithCapacityLimit
//   - ErrOutOfRange: At was called with an index outside [0, Len())
//
// Everything else is a caller contract. Negative sizes and Insert/Erase
// positions outside the valid range panic. Index, Get and Set do not check
// bounds at all unless the package is built with the vectordebug tag.
//
// # Thread Safety
//
// Vector and Buffer are not goroutine-safe. Callers sharing a vector must
// synchronize externally. The process-wide allocation counters read by
// ReadAllocStats and NewCollector are safe for concurrent use.
//
// # Metrics and Monitoring
//
// Each vector reports its own storage statistics:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Bytes reserved: %d\n", m.BytesReserved)
//
// Process-wide buffer allocations can be exported to Prometheus:
//
//	prometheus.MustRegister(vector.NewCollector())
package vector
