package chunks

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// Discover maps every chunk file in dir and returns the chunks in ascending
// id order, so that chunks[i].ID() == i.
//
// A gap in the ids fails with ErrCorruptState. Filesystem and mapping
// failures fail with ErrIO. On failure no chunk is left open.
func Discover[T Element](dir string, opts ...Option) (chunks []*Chunk[T], err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	defer func() {
		o.metrics.RecordChunkDiscover(len(chunks), time.Since(start), err)
	}()

	infos, err := Scan(o.fs, dir)
	if err != nil {
		return nil, err
	}

	opened := make([]*Chunk[T], len(infos))
	g := new(errgroup.Group)
	g.SetLimit(o.parallelism)
	for i, info := range infos {
		g.Go(func() error {
			c, err := openChunk[T](info.ID, info.Path)
			if err != nil {
				return err
			}
			o.advise(c.m, c.id, c.path)
			opened[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		_ = CloseAll(opened)
		return nil, err
	}

	o.logger.Debug("discovered chunks", "dir", dir, "chunks", len(opened))
	return opened, nil
}
