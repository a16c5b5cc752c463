// Package prom reports vecmmap operations to Prometheus.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/vecmmap"
)

var _ vecmmap.MetricsCollector = (*Collector)(nil)

// Collector is a vecmmap.MetricsCollector backed by Prometheus metrics.
type Collector struct {
	opLatency    *prometheus.HistogramVec
	ops          *prometheus.CounterVec
	slotBytes    prometheus.Gauge
	chunkBytes   prometheus.Counter
	chunksOpened prometheus.Gauge
}

// New creates a Collector and registers its metrics with reg. Metric names
// are prefixed with namespace; an empty namespace uses "vecmmap".
func New(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if namespace == "" {
		namespace = "vecmmap"
	}
	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of flag store and chunk operations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op", "status"}),
		ops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Total flag store and chunk operations",
		}, []string{"op", "status"}),
		slotBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "flag_slot_size_bytes",
			Help:      "Size of the flag slot file activated by the last rotation",
		}),
		chunkBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunk_created_bytes_total",
			Help:      "Total bytes of chunk files created",
		}),
		chunksOpened: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "chunks_discovered",
			Help:      "Number of chunks found by the last discovery",
		}),
	}

	for _, m := range []prometheus.Collector{c.opLatency, c.ops, c.slotBytes, c.chunkBytes, c.chunksOpened} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNew is like New but panics if registration fails.
func MustNew(reg prometheus.Registerer, namespace string) *Collector {
	c, err := New(reg, namespace)
	if err != nil {
		panic(err)
	}
	return c
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func (c *Collector) observe(op string, d time.Duration, err error) {
	s := status(err)
	c.opLatency.WithLabelValues(op, s).Observe(d.Seconds())
	c.ops.WithLabelValues(op, s).Inc()
}

// RecordRotation implements vecmmap.MetricsCollector.
func (c *Collector) RecordRotation(capacityBytes uint64, d time.Duration, err error) {
	c.observe("rotate", d, err)
	if err == nil {
		c.slotBytes.Set(float64(capacityBytes))
	}
}

// RecordFlush implements vecmmap.MetricsCollector.
func (c *Collector) RecordFlush(d time.Duration, err error) {
	c.observe("flush", d, err)
}

// RecordChunkCreate implements vecmmap.MetricsCollector.
func (c *Collector) RecordChunkCreate(lengthBytes int64, d time.Duration, err error) {
	c.observe("chunk_create", d, err)
	if err == nil {
		c.chunkBytes.Add(float64(lengthBytes))
	}
}

// RecordChunkDiscover implements vecmmap.MetricsCollector.
func (c *Collector) RecordChunkDiscover(chunks int, d time.Duration, err error) {
	c.observe("chunk_discover", d, err)
	if err == nil {
		c.chunksOpened.Set(float64(chunks))
	}
}
