package chunks

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecmmap/internal/errs"
	"github.com/hupe1980/vecmmap/internal/fs"
	"github.com/hupe1980/vecmmap/internal/mmap"
	"github.com/hupe1980/vecmmap/testutil"
)

func writeChunkFile(t *testing.T, dir string, id int, size int) {
	t.Helper()
	require.NoError(t, os.WriteFile(ChunkPath(dir, id), make([]byte, size), 0o644))
}

func TestCreateThenDiscover(t *testing.T) {
	dir := t.TempDir()

	c, err := Create[float32](dir, 0, 4096)
	require.NoError(t, err)
	require.NoError(t, c.Close())

	chunks, err := Discover[float32](dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseAll(chunks) })

	require.Len(t, chunks, 1)
	assert.Equal(t, 0, chunks[0].ID())
	assert.Equal(t, 4096, chunks[0].Size())
	assert.Equal(t, 1024, chunks[0].Len())
	assert.Equal(t, 4, chunks[0].ElementSize())
	for i, v := range chunks[0].Data() {
		require.Zero(t, v, "element %d", i)
	}
}

func TestDiscover_Gap(t *testing.T) {
	dir := t.TempDir()
	writeChunkFile(t, dir, 0, 64)
	writeChunkFile(t, dir, 2, 64)

	chunks, err := Discover[uint64](dir)
	require.ErrorIs(t, err, errs.ErrCorruptState)
	assert.Nil(t, chunks)
	assert.Contains(t, err.Error(), "missing chunk 1")
	assert.Contains(t, err.Error(), dir)
}

func TestDiscover_MissingFirst(t *testing.T) {
	dir := t.TempDir()
	writeChunkFile(t, dir, 1, 64)

	_, err := Discover[uint64](dir)
	require.ErrorIs(t, err, errs.ErrCorruptState)
	assert.Contains(t, err.Error(), "missing chunk 0")
}

func TestDiscover_Empty(t *testing.T) {
	chunks, err := Discover[float32](t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestDiscover_MissingDir(t *testing.T) {
	_, err := Discover[float32](filepath.Join(t.TempDir(), "nope"))
	assert.ErrorIs(t, err, errs.ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiscover_OrderAndForeignFiles(t *testing.T) {
	dir := t.TempDir()
	// Create out of order so directory order does not help.
	for _, id := range []int{11, 3, 0, 7, 1, 2, 4, 5, 6, 8, 9, 10} {
		writeChunkFile(t, dir, id, 8*(id+1))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chunk_01.mmap"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chunk_12.tmp"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "status.dat"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "chunk_12.mmap"), 0o755))

	chunks, err := Discover[int64](dir, WithParallelism(3))
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseAll(chunks) })

	require.Len(t, chunks, 12)
	for i, c := range chunks {
		assert.Equal(t, i, c.ID())
		assert.Equal(t, ChunkPath(dir, i), c.Path())
		assert.Equal(t, i+1, c.Len())
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeChunkFile(t, dir, 1, 32)
	writeChunkFile(t, dir, 0, 16)

	infos, err := Scan(fs.Default, dir)
	require.NoError(t, err)
	assert.Equal(t, []Info{
		{ID: 0, Path: ChunkPath(dir, 0), Size: 16},
		{ID: 1, Path: ChunkPath(dir, 1), Size: 32},
	}, infos)
}

func TestCreate_ExactLength(t *testing.T) {
	dir := t.TempDir()

	for _, size := range []int64{0, 1, 7, 4096, 10_000} {
		c, err := Create[uint8](dir, 0, size)
		require.NoError(t, err)
		assert.Equal(t, int(size), c.Size())
		assert.Equal(t, int(size), c.Len())
		require.NoError(t, c.Close())

		info, err := os.Stat(ChunkPath(dir, 0))
		require.NoError(t, err)
		assert.Equal(t, size, info.Size())
	}
}

func TestCreate_TrailingBytes(t *testing.T) {
	c, err := Create[float64](t.TempDir(), 0, 20)
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, 20, c.Size())
	assert.Equal(t, 2, c.Len())
}

func TestCreate_InvalidArgument(t *testing.T) {
	dir := t.TempDir()

	_, err := Create[float32](dir, -1, 16)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = Create[float32](dir, 0, -16)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreate_IOError(t *testing.T) {
	dir := t.TempDir()
	ffs := fs.NewFaultyFS(nil)
	ffs.AddRule("chunk_3.mmap", fs.Fault{FailOnTruncate: true})

	_, err := Create[float32](dir, 3, 64, WithFileSystem(ffs))
	require.ErrorIs(t, err, errs.ErrIO)
	assert.ErrorIs(t, err, fs.ErrInjected)
	assert.Contains(t, err.Error(), "chunk 3")

	_, err = Create[float32](filepath.Join(dir, "missing"), 0, 64)
	assert.ErrorIs(t, err, errs.ErrIO)
}

func TestWriteFlushReopen(t *testing.T) {
	dir := t.TempDir()

	var chunks []*Chunk[float32]
	for id := 0; id < 3; id++ {
		c, err := Create[float32](dir, id, 256, WithAdvice(mmap.AccessRandom))
		require.NoError(t, err)
		data := c.Data()
		for i := range data {
			data[i] = float32(id*1000 + i)
		}
		chunks = append(chunks, c)
	}

	flush := chunks[1].Flusher()
	require.NoError(t, flush())
	require.NoError(t, FlushAll(chunks))
	require.NoError(t, CloseAll(chunks))
	assert.ErrorIs(t, flush(), errs.ErrIO)

	reopened, err := Discover[float32](dir)
	require.NoError(t, err)
	defer CloseAll(reopened)

	require.Len(t, reopened, 3)
	for id, c := range reopened {
		data := c.Data()
		require.Len(t, data, 64)
		for i, v := range data {
			require.Equal(t, float32(id*1000+i), v)
		}
	}
}

func TestCreate_KeepsPrefix(t *testing.T) {
	dir := t.TempDir()

	c, err := Create[uint32](dir, 0, 8)
	require.NoError(t, err)
	c.Data()[0] = 0xDEADBEEF
	c.Data()[1] = 42
	require.NoError(t, c.Flush())
	require.NoError(t, c.Close())

	c, err = Create[uint32](dir, 0, 16)
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, []uint32{0xDEADBEEF, 42, 0, 0}, c.Data())
}

func TestCloseAll_Nil(t *testing.T) {
	c, err := Create[int16](t.TempDir(), 0, 8)
	require.NoError(t, err)

	require.NoError(t, CloseAll([]*Chunk[int16]{nil, c, nil}))
	require.NoError(t, c.Close())
	assert.Nil(t, c.Data())
}

type chunkCollector struct {
	creates      atomic.Int64
	createErrors atomic.Int64
	discovered   atomic.Int64
}

func (c *chunkCollector) RecordRotation(uint64, time.Duration, error) {}
func (c *chunkCollector) RecordFlush(time.Duration, error)            {}

func (c *chunkCollector) RecordChunkCreate(_ int64, _ time.Duration, err error) {
	c.creates.Add(1)
	if err != nil {
		c.createErrors.Add(1)
	}
}

func (c *chunkCollector) RecordChunkDiscover(n int, _ time.Duration, _ error) {
	c.discovered.Store(int64(n))
}

func TestMetrics(t *testing.T) {
	dir := t.TempDir()
	collector := &chunkCollector{}

	for id := 0; id < 2; id++ {
		c, err := Create[float32](dir, id, 16, WithMetrics(collector))
		require.NoError(t, err)
		require.NoError(t, c.Close())
	}
	_, err := Create[float32](dir, -1, 16, WithMetrics(collector))
	require.Error(t, err)

	chunks, err := Discover[float32](dir, WithMetrics(collector))
	require.NoError(t, err)
	require.NoError(t, CloseAll(chunks))

	assert.Equal(t, int64(3), collector.creates.Load())
	assert.Equal(t, int64(1), collector.createErrors.Load())
	assert.Equal(t, int64(2), collector.discovered.Load())
}

func TestRandomVectorsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	rng := testutil.NewRNG(99)
	const dim, perChunk = 16, 64

	want := make([]float32, 4*dim*perChunk)
	rng.FillUniform(want)

	for id := 0; id < 4; id++ {
		c, err := Create[float32](dir, id, dim*perChunk*4)
		require.NoError(t, err)
		copy(c.Data(), want[id*dim*perChunk:])
		require.NoError(t, c.Flush())
		require.NoError(t, c.Close())
	}

	chunks, err := Discover[float32](dir, WithParallelism(1))
	require.NoError(t, err)
	defer CloseAll(chunks)

	var got []float32
	for _, c := range chunks {
		got = append(got, c.Data()...)
	}
	assert.Equal(t, want, got)
}
