package strsim

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/strsim/metric"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordCompare is called after each single-pair comparison.
	// duration is the time taken, err is nil if successful.
	RecordCompare(kind metric.Kind, duration time.Duration, err error)

	// RecordBatch is called after each batch evaluation.
	// count is the number of candidates, workers the pool size requested,
	// duration the total time taken, err nil if successful.
	RecordBatch(kind metric.Kind, count, workers int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCompare(metric.Kind, time.Duration, error)         {}
func (NoopMetricsCollector) RecordBatch(metric.Kind, int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CompareCount      atomic.Int64
	CompareErrors     atomic.Int64
	CompareTotalNanos atomic.Int64
	BatchCount        atomic.Int64
	BatchCandidates   atomic.Int64
	BatchErrors       atomic.Int64
	BatchTotalNanos   atomic.Int64
}

// RecordCompare implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCompare(_ metric.Kind, duration time.Duration, err error) {
	b.CompareCount.Add(1)
	b.CompareTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CompareErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(_ metric.Kind, count, _ int, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchCandidates.Add(int64(count))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BatchErrors.Add(1)
	}
}
