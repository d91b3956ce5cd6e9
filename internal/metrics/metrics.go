// Package metrics exposes Prometheus instrumentation for the
// multiplication pipeline and point-in-time runtime memory snapshots.
package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the application's Prometheus collectors on a private
// registry, so tests and embedded uses never collide with the default
// global registry.
type Metrics struct {
	registry *prometheus.Registry

	multiplicationsTotal *prometheus.CounterVec
	duration             *prometheus.HistogramVec
	outputLength         prometheus.Gauge
	heapInUse            prometheus.Gauge
}

// New creates and registers the application collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		multiplicationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "polymul",
			Name:      "multiplications_total",
			Help:      "Completed polynomial multiplications by algorithm and status.",
		}, []string{"algorithm", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "polymul",
			Name:      "multiplication_duration_seconds",
			Help:      "Wall-clock duration of polynomial multiplications by algorithm.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
		}, []string{"algorithm"}),
		outputLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "polymul",
			Name:      "last_output_length",
			Help:      "Coefficient count of the most recent product.",
		}),
		heapInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "polymul",
			Name:      "heap_in_use_bytes",
			Help:      "Heap bytes in use at the last memory snapshot.",
		}),
	}
	m.registry.MustRegister(m.multiplicationsTotal, m.duration, m.outputLength, m.heapInUse)
	return m
}

// Registry returns the private registry for exposition.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveMultiplication records one finished multiplication. It
// implements the orchestration Recorder seam.
func (m *Metrics) ObserveMultiplication(algorithm string, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.multiplicationsTotal.WithLabelValues(algorithm, status).Inc()
	if err == nil {
		m.duration.WithLabelValues(algorithm).Observe(d.Seconds())
	}
}

// SetOutputLength records the coefficient count of the latest product.
func (m *Metrics) SetOutputLength(n int) {
	m.outputLength.Set(float64(n))
}

// MemorySnapshot holds a point-in-time runtime memory reading, shown by
// the details view next to the timing results.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	HeapSys      uint64 // bytes obtained from OS for heap
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	HeapObjects  uint64 // number of allocated heap objects
}

// ReadMemory reads the current runtime memory statistics and mirrors the
// heap usage into the heap gauge, so a scrape taken after a run reports
// the same number the details view printed.
func (m *Metrics) ReadMemory() MemorySnapshot {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	m.heapInUse.Set(float64(ms.HeapAlloc))
	return MemorySnapshot{
		HeapAlloc:    ms.HeapAlloc,
		HeapSys:      ms.HeapSys,
		Sys:          ms.Sys,
		NumGC:        ms.NumGC,
		PauseTotalNs: ms.PauseTotalNs,
		HeapObjects:  ms.HeapObjects,
	}
}
