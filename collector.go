package vector

import "github.com/prometheus/client_golang/prometheus"

type bufferCollector struct {
	allocations    *prometheus.Desc
	releases       *prometheus.Desc
	failures       *prometheus.Desc
	allocatedBytes *prometheus.Desc
	releasedBytes  *prometheus.Desc
	liveBytes      *prometheus.Desc
}

// NewCollector returns a prometheus.Collector exporting the process-wide
// buffer allocation counters. Register it once per registry.
func NewCollector() prometheus.Collector {
	return &bufferCollector{
		allocations: prometheus.NewDesc(
			"vector_buffer_allocations_total",
			"Total number of backing blocks allocated.",
			nil, nil,
		),
		releases: prometheus.NewDesc(
			"vector_buffer_releases_total",
			"Total number of backing blocks freed or released to callers.",
			nil, nil,
		),
		failures: prometheus.NewDesc(
			"vector_buffer_allocation_failures_total",
			"Total number of refused allocation requests.",
			nil, nil,
		),
		allocatedBytes: prometheus.NewDesc(
			"vector_buffer_allocated_bytes_total",
			"Total number of bytes allocated for backing blocks.",
			nil, nil,
		),
		releasedBytes: prometheus.NewDesc(
			"vector_buffer_released_bytes_total",
			"Total number of bytes freed or released to callers.",
			nil, nil,
		),
		liveBytes: prometheus.NewDesc(
			"vector_buffer_live_bytes",
			"Bytes currently held by backing blocks.",
			nil, nil,
		),
	}
}

// Describe returns all descriptions of the collector.
func (c *bufferCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.allocations
	ch <- c.releases
	ch <- c.failures
	ch <- c.allocatedBytes
	ch <- c.releasedBytes
	ch <- c.liveBytes
}

// Collect returns the current state of all metrics of the collector.
func (c *bufferCollector) Collect(ch chan<- prometheus.Metric) {
	s := ReadAllocStats()
	ch <- prometheus.MustNewConstMetric(c.allocations, prometheus.CounterValue, float64(s.Allocations))
	ch <- prometheus.MustNewConstMetric(c.releases, prometheus.CounterValue, float64(s.Releases))
	ch <- prometheus.MustNewConstMetric(c.failures, prometheus.CounterValue, float64(s.Failures))
	ch <- prometheus.MustNewConstMetric(c.allocatedBytes, prometheus.CounterValue, float64(s.BytesAllocated))
	ch <- prometheus.MustNewConstMetric(c.releasedBytes, prometheus.CounterValue, float64(s.BytesReleased))
	ch <- prometheus.MustNewConstMetric(c.liveBytes, prometheus.GaugeValue, float64(s.LiveBytes()))
}
