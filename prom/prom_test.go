package prom

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmmap"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := New(reg, "test")
	require.NoError(t, err)

	boom := errors.New("boom")
	c.RecordRotation(2048, time.Millisecond, nil)
	c.RecordRotation(4096, time.Millisecond, boom)
	c.RecordFlush(time.Millisecond, nil)
	c.RecordFlush(time.Millisecond, nil)
	c.RecordChunkCreate(1024, time.Millisecond, nil)
	c.RecordChunkCreate(1024, time.Millisecond, boom)
	c.RecordChunkDiscover(5, time.Millisecond, nil)

	assert.Equal(t, 1.0, promtestutil.ToFloat64(c.ops.WithLabelValues("rotate", "success")))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(c.ops.WithLabelValues("rotate", "error")))
	assert.Equal(t, 2.0, promtestutil.ToFloat64(c.ops.WithLabelValues("flush", "success")))
	assert.Equal(t, 2048.0, promtestutil.ToFloat64(c.slotBytes))
	assert.Equal(t, 1024.0, promtestutil.ToFloat64(c.chunkBytes))
	assert.Equal(t, 5.0, promtestutil.ToFloat64(c.chunksOpened))

	n, err := promtestutil.GatherAndCount(reg, "test_operation_latency_seconds")
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

func TestNew_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	MustNew(reg, "")

	_, err := New(reg, "")
	assert.Error(t, err)
	assert.Panics(t, func() { MustNew(reg, "") })
}

func TestCollector_WithFlagStore(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := MustNew(reg, "")

	fs, err := vecmmap.OpenFlags(t.TempDir(),
		vecmmap.WithMinFlagCapacity(128),
		vecmmap.WithMetricsCollector(c),
	)
	require.NoError(t, err)
	defer fs.Close()

	require.NoError(t, fs.Grow(2000))
	require.NoError(t, fs.Flusher()())

	assert.Equal(t, 256.0, promtestutil.ToFloat64(c.slotBytes))
	assert.Equal(t, 1.0, promtestutil.ToFloat64(c.ops.WithLabelValues("flush", "success")))
}
