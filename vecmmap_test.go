package vecmmap_test

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmmap"
)

func TestOpenFlags(t *testing.T) {
	dir := t.TempDir()
	collector := &vecmmap.BasicMetricsCollector{}

	var buf bytes.Buffer
	logger := vecmmap.NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fs, err := vecmmap.OpenFlags(dir,
		vecmmap.WithMinFlagCapacity(128),
		vecmmap.WithLogger(logger),
		vecmmap.WithMetricsCollector(collector),
		vecmmap.WithAdvice(vecmmap.AccessRandom),
	)
	require.NoError(t, err)
	defer fs.Close()

	flush := fs.Flusher()
	require.NoError(t, fs.Grow(5000))
	assert.Equal(t, vecmmap.SlotB, fs.ActiveSlot())
	assert.False(t, fs.Set(4999, true))
	require.NoError(t, flush())

	info, err := vecmmap.InspectFlags(dir)
	require.NoError(t, err)
	assert.Equal(t, uint64(5000), info.Len)
	assert.Equal(t, uint64(1), info.SetCount)

	stats := collector.GetStats()
	assert.Equal(t, int64(1), stats.RotationCount)
	assert.Equal(t, uint64(1024), stats.CapacityBytes)
	assert.Equal(t, int64(1), stats.FlushCount)
	assert.Zero(t, stats.FlushErrors)

	assert.Contains(t, buf.String(), `"msg":"rotated flag slot"`)
	assert.Contains(t, buf.String(), `"msg":"opened flag store"`)
}

func TestOpenFlags_Errors(t *testing.T) {
	_, err := vecmmap.OpenFlags(t.TempDir(), vecmmap.WithMinFlagCapacity(100))
	assert.ErrorIs(t, err, vecmmap.ErrInvalidArgument)

	fs, err := vecmmap.OpenFlags(t.TempDir())
	require.NoError(t, err)
	defer fs.Close()
	assert.Equal(t, uint64(vecmmap.DefaultMinFlagCapacity), fs.Capacity())
	require.NoError(t, fs.Grow(10))
	assert.ErrorIs(t, fs.Grow(5), vecmmap.ErrInvalidArgument)
}

func TestChunks(t *testing.T) {
	dir := t.TempDir()
	collector := &vecmmap.BasicMetricsCollector{}

	for id := 0; id < 3; id++ {
		c, err := vecmmap.CreateChunk[float32](dir, id, 1024, vecmmap.WithMetricsCollector(collector))
		require.NoError(t, err)
		c.Data()[0] = float32(id) + 0.5
		require.NoError(t, c.Flush())
		require.NoError(t, c.Close())
	}

	infos, err := vecmmap.ScanChunks(dir)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, filepath.Join(dir, "chunk_2.mmap"), infos[2].Path)

	chunks, err := vecmmap.DiscoverChunks[float32](dir,
		vecmmap.WithParallelism(2),
		vecmmap.WithMetricsCollector(collector),
	)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	for id, c := range chunks {
		assert.Equal(t, id, c.ID())
		assert.Equal(t, 256, c.Len())
		assert.Equal(t, float32(id)+0.5, c.Data()[0])
	}
	require.NoError(t, vecmmap.FlushChunks(chunks))
	require.NoError(t, vecmmap.CloseChunks(chunks))

	stats := collector.GetStats()
	assert.Equal(t, int64(3), stats.ChunkCreateCount)
	assert.Equal(t, int64(3*1024), stats.ChunkBytesCreated)
	assert.Equal(t, int64(1), stats.DiscoverCount)
	assert.Equal(t, int64(3), stats.ChunksDiscovered)
}

func TestDiscoverChunks_Gap(t *testing.T) {
	dir := t.TempDir()
	for _, id := range []int{0, 2} {
		c, err := vecmmap.CreateChunk[uint8](dir, id, 16)
		require.NoError(t, err)
		require.NoError(t, c.Close())
	}

	_, err := vecmmap.DiscoverChunks[uint8](dir)
	assert.ErrorIs(t, err, vecmmap.ErrCorruptState)
	assert.NotErrorIs(t, err, vecmmap.ErrIO)
}

func TestFlagCapacityBytes(t *testing.T) {
	assert.Equal(t, uint64(128), vecmmap.FlagCapacityBytes(1024, 128))
	assert.Equal(t, uint64(256), vecmmap.FlagCapacityBytes(1025, 128))
	assert.Equal(t, uint64(vecmmap.DefaultMinFlagCapacity), vecmmap.FlagCapacityBytes(0, vecmmap.DefaultMinFlagCapacity))
}
