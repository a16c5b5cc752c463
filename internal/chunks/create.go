package chunks

import (
	"time"

	"github.com/hupe1980/vecmmap/internal/conv"
	"github.com/hupe1980/vecmmap/internal/errs"
	"github.com/hupe1980/vecmmap/internal/fs"
)

// Create makes chunk id in dir exactly lengthBytes long and maps it.
//
// A new file is zero-filled; an existing one is truncated or extended, keeping
// its leading bytes. Create does not check for collisions with open chunks:
// callers allocate ids sequentially.
func Create[T Element](dir string, id int, lengthBytes int64, opts ...Option) (c *Chunk[T], err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	defer func() {
		o.metrics.RecordChunkCreate(lengthBytes, time.Since(start), err)
	}()

	if id < 0 {
		return nil, errs.InvalidArgument("chunks: negative chunk id %d in %s", id, dir)
	}
	if lengthBytes < 0 {
		return nil, errs.InvalidArgument("chunks: negative length %d for chunk %d in %s", lengthBytes, id, dir)
	}
	if _, err := conv.Int64ToInt(lengthBytes); err != nil {
		return nil, errs.InvalidArgument("chunks: length %d for chunk %d in %s is not mappable: %v", lengthBytes, id, dir, err)
	}

	path := ChunkPath(dir, id)
	if err := fs.CreateWithLength(o.fs, path, lengthBytes); err != nil {
		return nil, errs.IO(err, "chunks: size chunk %d to %d bytes in %s", id, lengthBytes, dir)
	}

	c, err = openChunk[T](id, path)
	if err != nil {
		return nil, err
	}
	o.advise(c.m, id, path)

	o.logger.Debug("created chunk", "dir", dir, "chunk", id, "bytes", lengthBytes)
	return c, nil
}
