package exkmeans

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the metric
// package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordCombination is called after Lloyd's iteration finished for one
	// initialization. err is nil if it converged.
	RecordCombination(iterations int, distortion int64, duration time.Duration, err error)

	// RecordSearch is called once a search finished. combinations is the
	// number of initializations explored.
	RecordSearch(combinations int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCombination(int, int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration, error)             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CombinationCount      atomic.Int64
	CombinationErrors     atomic.Int64
	CombinationTotalNanos atomic.Int64
	IterationsTotal       atomic.Int64
	MaxIterations         atomic.Int64
	SearchCount           atomic.Int64
	SearchErrors          atomic.Int64
	SearchTotalNanos      atomic.Int64
}

// RecordCombination implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCombination(iterations int, _ int64, duration time.Duration, err error) {
	b.CombinationCount.Add(1)
	b.CombinationTotalNanos.Add(duration.Nanoseconds())
	b.IterationsTotal.Add(int64(iterations))
	for {
		cur := b.MaxIterations.Load()
		if int64(iterations) <= cur || b.MaxIterations.CompareAndSwap(cur, int64(iterations)) {
			break
		}
	}
	if err != nil {
		b.CombinationErrors.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(_ int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CombinationCount:    b.CombinationCount.Load(),
		CombinationErrors:   b.CombinationErrors.Load(),
		CombinationAvgNanos: b.getAvgCombinationNanos(),
		IterationsTotal:     b.IterationsTotal.Load(),
		MaxIterations:       b.MaxIterations.Load(),
		SearchCount:         b.SearchCount.Load(),
		SearchErrors:        b.SearchErrors.Load(),
		SearchTotalNanos:    b.SearchTotalNanos.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgCombinationNanos() int64 {
	count := b.CombinationCount.Load()
	if count == 0 {
		return 0
	}
	return b.CombinationTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CombinationCount    int64
	CombinationErrors   int64
	CombinationAvgNanos int64
	IterationsTotal     int64
	MaxIterations       int64
	SearchCount         int64
	SearchErrors        int64
	SearchTotalNanos    int64
}
