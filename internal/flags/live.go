package flags

import (
	"sync"

	"github.com/hupe1980/vecmmap/internal/mmap"
)

// liveMapping is the shared cell holding the active slot's mapping.
//
// The Store owns the cell; flush callbacks capture the cell rather than the
// mapping, so a rotation can swap the mapping without invalidating callbacks
// issued before it.
type liveMapping struct {
	mu     sync.Mutex
	m      *mmap.Mapping
	closed bool
}

func (c *liveMapping) isEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.m == nil
}

// replace installs m and unmaps the previous mapping, if any. The caller must
// have dropped every view of the previous mapping.
func (c *liveMapping) replace(m *mmap.Mapping) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	old := c.m
	c.m = m
	if old == nil {
		return nil
	}
	return old.Close()
}

func (c *liveMapping) flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return mmap.ErrClosed
	}
	if c.m == nil {
		return nil
	}
	return c.m.Flush()
}

func (c *liveMapping) close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.m == nil {
		return nil
	}
	err := c.m.Close()
	c.m = nil
	return err
}
