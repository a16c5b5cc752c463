package flags

import (
	"log/slog"

	"github.com/hupe1980/vecmmap/internal/fs"
	"github.com/hupe1980/vecmmap/internal/metrics"
	"github.com/hupe1980/vecmmap/internal/mmap"
)

// Option configures a Store.
type Option func(*Store)

// WithMinCapacity sets the smallest slot file size in bytes. It must be a
// power of two and at least 8. Reopening a directory with a different floor
// is allowed: slot files are resized to the capacity derived at open.
func WithMinCapacity(bytes uint64) Option {
	return func(s *Store) {
		s.minCapacity = bytes
	}
}

// WithLogger sets the logger for the store.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithFileSystem sets the filesystem used to create, size and copy files.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(s *Store) {
		if fsys != nil {
			s.fs = fsys
		}
	}
}

// WithMetrics sets the collector notified of rotations and flushes.
func WithMetrics(c metrics.Collector) Option {
	return func(s *Store) {
		if c != nil {
			s.metrics = c
		}
	}
}

// WithAdvice sets the access hint given to the kernel for every newly mapped
// slot file. The default is mmap.AccessWillNeed.
func WithAdvice(p mmap.AccessPattern) Option {
	return func(s *Store) {
		s.advice = p
	}
}
