package vecmmap

import (
	"github.com/hupe1980/vecmmap/internal/chunks"
	"github.com/hupe1980/vecmmap/internal/flags"
	"github.com/hupe1980/vecmmap/internal/mmap"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	minFlagCapacity  uint64
	parallelism      int
	advice           *mmap.AccessPattern
}

// Option configures OpenFlags, DiscoverChunks and CreateChunk.
// Options that do not apply to a store are ignored by it.
type Option func(*options)

// WithLogger sets the logger. The default discards all output.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetricsCollector sets the collector notified of rotations, flushes and
// chunk operations.
func WithMetricsCollector(c MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = c
	}
}

// WithMinFlagCapacity sets the smallest flag slot file in bytes. It must be
// a power of two and at least 8; the default is 1 MiB.
func WithMinFlagCapacity(bytes uint64) Option {
	return func(o *options) {
		o.minFlagCapacity = bytes
	}
}

// WithParallelism bounds how many chunk files DiscoverChunks maps at once.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// AccessPattern is an access hint passed to the kernel for new mappings.
type AccessPattern = mmap.AccessPattern

const (
	AccessDefault    = mmap.AccessDefault
	AccessSequential = mmap.AccessSequential
	AccessRandom     = mmap.AccessRandom
	AccessWillNeed   = mmap.AccessWillNeed
	AccessDontNeed   = mmap.AccessDontNeed
)

// WithAdvice sets the access hint for new mappings. Flag slots default to
// AccessWillNeed, chunks to AccessDefault. A hint the kernel rejects is
// logged and otherwise ignored.
func WithAdvice(p AccessPattern) Option {
	return func(o *options) {
		o.advice = &p
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) flagOptions() []flags.Option {
	fo := []flags.Option{
		flags.WithLogger(o.logger.slogger()),
		flags.WithMetrics(o.metricsCollector),
	}
	if o.minFlagCapacity != 0 {
		fo = append(fo, flags.WithMinCapacity(o.minFlagCapacity))
	}
	if o.advice != nil {
		fo = append(fo, flags.WithAdvice(*o.advice))
	}
	return fo
}

func (o options) chunkOptions() []chunks.Option {
	co := []chunks.Option{
		chunks.WithLogger(o.logger.slogger()),
		chunks.WithMetrics(o.metricsCollector),
		chunks.WithParallelism(o.parallelism),
	}
	if o.advice != nil {
		co = append(co, chunks.WithAdvice(*o.advice))
	}
	return co
}
