package chunks

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/vecmmap/internal/fs"
	"github.com/hupe1980/vecmmap/internal/metrics"
	"github.com/hupe1980/vecmmap/internal/mmap"
)

type options struct {
	fs          fs.FileSystem
	logger      *slog.Logger
	metrics     metrics.Collector
	parallelism int
	advice      mmap.AccessPattern
}

func defaultOptions() options {
	return options{
		fs:          fs.Default,
		logger:      slog.New(slog.DiscardHandler),
		metrics:     metrics.Noop{},
		parallelism: runtime.GOMAXPROCS(0),
		advice:      mmap.AccessDefault,
	}
}

// Option configures Discover and Create.
type Option func(*options)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithFileSystem sets the filesystem used to list, stat and size chunk files.
func WithFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		if fsys != nil {
			o.fs = fsys
		}
	}
}

// WithMetrics sets the collector notified of discoveries and creations.
func WithMetrics(c metrics.Collector) Option {
	return func(o *options) {
		if c != nil {
			o.metrics = c
		}
	}
}

// WithParallelism bounds how many chunk files Discover maps at once.
// Values below 1 are ignored.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

// WithAdvice sets the access hint given to the kernel for each mapped chunk.
// Failures to apply it are logged, not returned.
func WithAdvice(p mmap.AccessPattern) Option {
	return func(o *options) {
		o.advice = p
	}
}

func (o *options) advise(m *mmap.Mapping, id int, path string) {
	if o.advice == mmap.AccessDefault {
		return
	}
	if err := m.Advise(o.advice); err != nil {
		o.logger.Error("failed to advise chunk mapping",
			"chunk", id,
			"path", path,
			"advice", o.advice,
			"error", err,
		)
	}
}
