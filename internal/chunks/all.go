package chunks

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// FlushAll flushes every chunk concurrently and returns the first failure.
func FlushAll[T Element](chunks []*Chunk[T]) error {
	var g errgroup.Group
	for _, c := range chunks {
		if c == nil {
			continue
		}
		g.Go(c.Flush)
	}
	return g.Wait()
}

// CloseAll closes every chunk, skipping nil entries, and combines the errors.
func CloseAll[T Element](chunks []*Chunk[T]) error {
	var err error
	for _, c := range chunks {
		if c == nil {
			continue
		}
		err = errors.CombineErrors(err, c.Close())
	}
	return err
}
