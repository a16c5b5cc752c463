// Package metrics defines the hooks the stores call to report operations.
package metrics

import "time"

// Collector receives operational events from the flag and chunk stores.
// Implementations must be safe for concurrent use; flushes may be reported
// from a goroutine other than the one mutating the store.
type Collector interface {
	// RecordRotation is called after a capacity-exceeding Grow, successful or not.
	// capacityBytes is the size of the slot file that was (or would have been) activated.
	RecordRotation(capacityBytes uint64, duration time.Duration, err error)

	// RecordFlush is called after each flag store flush callback runs.
	RecordFlush(duration time.Duration, err error)

	// RecordChunkCreate is called after each chunk creation.
	RecordChunkCreate(lengthBytes int64, duration time.Duration, err error)

	// RecordChunkDiscover is called after each chunk directory discovery.
	RecordChunkDiscover(chunks int, duration time.Duration, err error)
}

// Noop is a Collector that drops every event.
type Noop struct{}

func (Noop) RecordRotation(uint64, time.Duration, error)   {}
func (Noop) RecordFlush(time.Duration, error)              {}
func (Noop) RecordChunkCreate(int64, time.Duration, error) {}
func (Noop) RecordChunkDiscover(int, time.Duration, error) {}
