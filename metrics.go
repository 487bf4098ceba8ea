package brepgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSweep is called after each extrude or revolve.
	// created is the number of new entities, failed the number of requests
	// that did not create one. err is nil if the sweep was complete.
	RecordSweep(op string, created, failed int, duration time.Duration, err error)

	// RecordCheck is called after each topology check with the number of
	// reported errors and warnings.
	RecordCheck(errors, warnings int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSweep(string, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordCheck(int, int, time.Duration)                {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ExtrudeCount    atomic.Int64
	RevolveCount    atomic.Int64
	SweepErrors     atomic.Int64
	SweepTotalNanos atomic.Int64
	EntitiesCreated atomic.Int64
	EntitiesFailed  atomic.Int64
	CheckCount      atomic.Int64
	CheckErrors     atomic.Int64
	CheckWarnings   atomic.Int64
	CheckTotalNanos atomic.Int64
}

// RecordSweep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSweep(op string, created, failed int, duration time.Duration, err error) {
	switch op {
	case opExtrude:
		b.ExtrudeCount.Add(1)
	case opRevolve:
		b.RevolveCount.Add(1)
	}
	b.SweepTotalNanos.Add(duration.Nanoseconds())
	b.EntitiesCreated.Add(int64(created))
	b.EntitiesFailed.Add(int64(failed))
	if err != nil {
		b.SweepErrors.Add(1)
	}
}

// RecordCheck implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCheck(errors, warnings int, duration time.Duration) {
	b.CheckCount.Add(1)
	b.CheckErrors.Add(int64(errors))
	b.CheckWarnings.Add(int64(warnings))
	b.CheckTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ExtrudeCount:    b.ExtrudeCount.Load(),
		RevolveCount:    b.RevolveCount.Load(),
		SweepErrors:     b.SweepErrors.Load(),
		SweepAvgNanos:   b.getAvgSweepNanos(),
		EntitiesCreated: b.EntitiesCreated.Load(),
		EntitiesFailed:  b.EntitiesFailed.Load(),
		CheckCount:      b.CheckCount.Load(),
		CheckErrors:     b.CheckErrors.Load(),
		CheckWarnings:   b.CheckWarnings.Load(),
		CheckAvgNanos:   b.getAvgCheckNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgSweepNanos() int64 {
	count := b.ExtrudeCount.Load() + b.RevolveCount.Load()
	if count == 0 {
		return 0
	}
	return b.SweepTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgCheckNanos() int64 {
	count := b.CheckCount.Load()
	if count == 0 {
		return 0
	}
	return b.CheckTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ExtrudeCount    int64
	RevolveCount    int64
	SweepErrors     int64
	SweepAvgNanos   int64
	EntitiesCreated int64
	EntitiesFailed  int64
	CheckCount      int64
	CheckErrors     int64
	CheckWarnings   int64
	CheckAvgNanos   int64
}
