package vector

import "go.uber.org/atomic"

// allocCounters tracks buffer allocations for the whole process. Buffers
// owned by unrelated containers may live on different goroutines, so the
// counters are atomic even though containers are not.
type allocCounters struct {
	allocations    atomic.Uint64
	releases       atomic.Uint64
	failures       atomic.Uint64
	allocatedBytes atomic.Uint64
	releasedBytes  atomic.Uint64
}

var allocStats allocCounters

func (c *allocCounters) recordAlloc(bytes uintptr) {
	c.allocations.Inc()
	c.allocatedBytes.Add(uint64(bytes))
}

func (c *allocCounters) recordRelease(bytes uintptr) {
	c.releases.Inc()
	c.releasedBytes.Add(uint64(bytes))
}

// AllocStats is a snapshot of process-wide buffer allocation counters.
type AllocStats struct {
	Allocations    uint64 // Blocks allocated
	Releases       uint64 // Blocks freed or released to callers
	Failures       uint64 // Refused allocation requests
	BytesAllocated uint64 // Bytes allocated in total
	BytesReleased  uint64 // Bytes freed or released in total
}

// LiveBytes returns the number of bytes allocated and not yet released.
func (s AllocStats) LiveBytes() uint64 {
	if s.BytesReleased > s.BytesAllocated {
		return 0
	}
	return s.BytesAllocated - s.BytesReleased
}

// ReadAllocStats returns a snapshot of the allocation counters.
func ReadAllocStats() AllocStats {
	return AllocStats{
		Allocations:    allocStats.allocations.Load(),
		Releases:       allocStats.releases.Load(),
		Failures:       allocStats.failures.Load(),
		BytesAllocated: allocStats.allocatedBytes.Load(),
		BytesReleased:  allocStats.releasedBytes.Load(),
	}
}
