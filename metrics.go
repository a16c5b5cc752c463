package vecmmap

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/vecmmap/internal/metrics"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the prom
// package provides a Prometheus implementation.
//
// Flushes may be reported from the goroutine running a flush callback, so
// implementations must be safe for concurrent use.
type MetricsCollector = metrics.Collector

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector = metrics.Noop

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RotationCount      atomic.Int64
	RotationErrors     atomic.Int64
	RotationTotalNanos atomic.Int64
	CapacityBytes      atomic.Uint64
	FlushCount         atomic.Int64
	FlushErrors        atomic.Int64
	FlushTotalNanos    atomic.Int64
	ChunkCreateCount   atomic.Int64
	ChunkCreateErrors  atomic.Int64
	ChunkBytesCreated  atomic.Int64
	DiscoverCount      atomic.Int64
	DiscoverErrors     atomic.Int64
	ChunksDiscovered   atomic.Int64
}

// RecordRotation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRotation(capacityBytes uint64, duration time.Duration, err error) {
	b.RotationCount.Add(1)
	b.RotationTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RotationErrors.Add(1)
		return
	}
	b.CapacityBytes.Store(capacityBytes)
}

// RecordFlush implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFlush(duration time.Duration, err error) {
	b.FlushCount.Add(1)
	b.FlushTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FlushErrors.Add(1)
	}
}

// RecordChunkCreate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordChunkCreate(lengthBytes int64, _ time.Duration, err error) {
	b.ChunkCreateCount.Add(1)
	if err != nil {
		b.ChunkCreateErrors.Add(1)
		return
	}
	b.ChunkBytesCreated.Add(lengthBytes)
}

// RecordChunkDiscover implements MetricsCollector.
func (b *BasicMetricsCollector) RecordChunkDiscover(chunks int, _ time.Duration, err error) {
	b.DiscoverCount.Add(1)
	if err != nil {
		b.DiscoverErrors.Add(1)
		return
	}
	b.ChunksDiscovered.Add(int64(chunks))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RotationCount:     b.RotationCount.Load(),
		RotationErrors:    b.RotationErrors.Load(),
		RotationAvgNanos:  avg(b.RotationTotalNanos.Load(), b.RotationCount.Load()),
		CapacityBytes:     b.CapacityBytes.Load(),
		FlushCount:        b.FlushCount.Load(),
		FlushErrors:       b.FlushErrors.Load(),
		FlushAvgNanos:     avg(b.FlushTotalNanos.Load(), b.FlushCount.Load()),
		ChunkCreateCount:  b.ChunkCreateCount.Load(),
		ChunkCreateErrors: b.ChunkCreateErrors.Load(),
		ChunkBytesCreated: b.ChunkBytesCreated.Load(),
		DiscoverCount:     b.DiscoverCount.Load(),
		DiscoverErrors:    b.DiscoverErrors.Load(),
		ChunksDiscovered:  b.ChunksDiscovered.Load(),
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
	RotationCount     int64
	RotationErrors    int64
	RotationAvgNanos  int64
	CapacityBytes     uint64 // slot size after the last successful rotation
	FlushCount        int64
	FlushErrors       int64
	FlushAvgNanos     int64
	ChunkCreateCount  int64
	ChunkCreateErrors int64
	ChunkBytesCreated int64
	DiscoverCount     int64
	DiscoverErrors    int64
	ChunksDiscovered  int64
}
