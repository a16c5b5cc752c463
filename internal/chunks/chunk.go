package chunks

import (
	"unsafe"

	"github.com/hupe1980/vecmmap/internal/errs"
	"github.com/hupe1980/vecmmap/internal/mmap"
)

// Chunk is one writable memory-mapped chunk file viewed as a slice of T.
type Chunk[T Element] struct {
	id   int
	path string
	m    *mmap.Mapping
	data []T
}

func openChunk[T Element](id int, path string) (*Chunk[T], error) {
	m, err := mmap.OpenWritable(path)
	if err != nil {
		return nil, errs.IO(err, "chunks: map chunk %d at %s", id, path)
	}

	data, err := mmap.Slice[T](m)
	if err != nil {
		_ = m.Close()
		return nil, errs.IO(err, "chunks: typed view over chunk %d at %s", id, path)
	}

	return &Chunk[T]{id: id, path: path, m: m, data: data}, nil
}

// ID returns the chunk id encoded in the file name.
func (c *Chunk[T]) ID() int { return c.id }

// Path returns the chunk's backing file.
func (c *Chunk[T]) Path() string { return c.path }

// Data returns the chunk's elements. Reads and writes go straight to the
// mapped file. The slice must not be used after Close.
//
// Indexing past Len is a caller bug; the slice bounds are the only check.
func (c *Chunk[T]) Data() []T { return c.data }

// Len returns the number of whole elements in the chunk.
func (c *Chunk[T]) Len() int { return len(c.data) }

// Size returns the chunk's length in bytes.
func (c *Chunk[T]) Size() int { return c.m.Size() }

// ElementSize returns the size of T in bytes.
func (c *Chunk[T]) ElementSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Flush writes the chunk's dirty pages to disk.
func (c *Chunk[T]) Flush() error {
	if err := c.m.Flush(); err != nil {
		return errs.IO(err, "chunks: flush chunk %d at %s", c.id, c.path)
	}
	return nil
}

// Flusher returns a callback that flushes this chunk. It may be called from
// any goroutine; after Close it fails with ErrIO.
func (c *Chunk[T]) Flusher() mmap.Flusher {
	return c.Flush
}

// Close unmaps the chunk. It does not flush. Close is idempotent.
func (c *Chunk[T]) Close() error {
	c.data = nil
	if err := c.m.Close(); err != nil {
		return errs.IO(err, "chunks: close chunk %d at %s", c.id, c.path)
	}
	return nil
}
