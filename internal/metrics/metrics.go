// Package metrics exposes the kernel's Prometheus counters and
// histograms, grounded on the teacher's declared dependency on
// github.com/prometheus/client_golang (the teacher's own metrics.go
// source was not present in the example pack, only its test file and the
// sibling runtime.MemStats-based internal/metrics/memory.go, which this
// package's MemorySnapshot type adapts).
package metrics

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
)

// MultiplyTotal counts multiplications and squarings by the algorithm the
// dispatcher selected, per spec §4.5 ("block", "basecase", "karatsuba",
// "ntt" and their "_sqr" counterparts).
var MultiplyTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bignum_multiply_total",
		Help: "Number of multiplications/squarings performed, by algorithm.",
	},
	[]string{"algorithm"},
)

// NTTTablesBuiltTotal counts how many times a (prime, size) root-of-unity
// table had to be built from scratch rather than served from cache,
// per spec §4.4's table-caching requirement.
var NTTTablesBuiltTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "bignum_ntt_tables_built_total",
		Help: "Number of NTT root-of-unity tables built (cache misses).",
	},
)

// NTTTransformSeconds observes the wall-clock duration of a single
// forward or inverse NTT transform call.
var NTTTransformSeconds = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "bignum_ntt_transform_seconds",
		Help:    "Duration of a single NTT transform call.",
		Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
	},
)

func init() {
	prometheus.MustRegister(MultiplyTotal, NTTTablesBuiltTotal, NTTTransformSeconds)
}

// MemorySnapshot holds a point-in-time memory reading, mirroring the
// teacher's internal/metrics.MemorySnapshot shape.
type MemorySnapshot struct {
	HeapAlloc    uint64
	HeapSys      uint64
	Sys          uint64
	NumGC        uint32
	PauseTotalNs uint64
	HeapObjects  uint64
}

// MemoryCollector reads runtime memory statistics on demand via Snapshot.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		HeapObjects:  m.HeapObjects,
	}
}
