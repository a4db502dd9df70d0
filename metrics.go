package lloyd

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    runCounter     prometheus.Counter
//	    epochHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordRun(points, k, epochs int, d time.Duration, err error) {
//	    p.runCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordRun is called after each run.
	// d is the total time taken, err is nil if successful.
	RecordRun(points, k, epochs int, d time.Duration, err error)

	// RecordEpoch is called after each epoch of a run.
	RecordEpoch(stats EpochStats)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(int, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordEpoch(EpochStats)                        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount        atomic.Int64
	RunErrors       atomic.Int64
	RunTotalNanos   atomic.Int64
	PointsTotal     atomic.Int64
	EpochCount      atomic.Int64
	EpochTotalNanos atomic.Int64
	Reassigned      atomic.Int64
	EmptyClusters   atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(points, k, epochs int, d time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(d.Nanoseconds())
	b.PointsTotal.Add(int64(points))
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// RecordEpoch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEpoch(stats EpochStats) {
	b.EpochCount.Add(1)
	b.EpochTotalNanos.Add(stats.Duration.Nanoseconds())
	b.Reassigned.Add(int64(stats.Reassigned))
	b.EmptyClusters.Add(int64(len(stats.Empty)))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RunCount:      b.RunCount.Load(),
		RunErrors:     b.RunErrors.Load(),
		RunAvgNanos:   avg(b.RunTotalNanos.Load(), b.RunCount.Load()),
		PointsTotal:   b.PointsTotal.Load(),
		EpochCount:    b.EpochCount.Load(),
		EpochAvgNanos: avg(b.EpochTotalNanos.Load(), b.EpochCount.Load()),
		Reassigned:    b.Reassigned.Load(),
		EmptyClusters: b.EmptyClusters.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RunCount      int64
	RunErrors     int64
	RunAvgNanos   int64
	PointsTotal   int64
	EpochCount    int64
	EpochAvgNanos int64
	Reassigned    int64
	EmptyClusters int64
}
