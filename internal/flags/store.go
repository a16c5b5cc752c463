package flags

import (
	"log/slog"
	"time"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/cockroachdb/errors"

	"github.com/hupe1980/vecmmap/internal/bitset"
	"github.com/hupe1980/vecmmap/internal/conv"
	"github.com/hupe1980/vecmmap/internal/errs"
	"github.com/hupe1980/vecmmap/internal/fs"
	"github.com/hupe1980/vecmmap/internal/invariants"
	"github.com/hupe1980/vecmmap/internal/metrics"
	"github.com/hupe1980/vecmmap/internal/mmap"
)

// Store is a persistent, growable vector of boolean flags.
//
// The zero value is not usable; call Open.
type Store struct {
	dir         string
	fs          fs.FileSystem
	logger      *slog.Logger
	metrics     metrics.Collector
	minCapacity uint64
	advice      mmap.AccessPattern

	statusMap *mmap.Mapping
	status    *Status // overlay of statusMap
	live      *liveMapping
	bits      *bitset.View // view of live's mapping, replaced together with it

	closed       bool
	closeChecker invariants.CloseChecker
}

// Open opens the flag store in dir, creating the directory and an empty
// store (Len 0, slot A) if needed.
func Open(dir string, opts ...Option) (*Store, error) {
	s := &Store{
		dir:         dir,
		fs:          fs.Default,
		logger:      slog.New(slog.DiscardHandler),
		metrics:     metrics.Noop{},
		minCapacity: DefaultMinCapacity,
		advice:      mmap.AccessWillNeed,
		live:        &liveMapping{},
	}
	for _, opt := range opts {
		opt(s)
	}

	if !validMinCapacity(s.minCapacity) {
		return nil, errs.InvalidArgument("flags: minimum capacity %d is not a power of two >= 8", s.minCapacity)
	}

	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.IO(err, "flags: create directory %s", dir)
	}

	statusMap, status, err := openStatus(s.fs, dir)
	if err != nil {
		return nil, err
	}
	s.statusMap = statusMap
	s.status = status

	if err := s.reopen(status.Len, status.ActiveSlot); err != nil {
		_ = statusMap.Close()
		return nil, err
	}

	s.logger.Debug("opened flag store",
		"dir", dir,
		"len", status.Len,
		"slot", status.ActiveSlot,
		"capacity", CapacityBytes(status.Len, s.minCapacity),
	)
	return s, nil
}

// reopen maps slot sized for numFlags and makes it the live mapping.
func (s *Store) reopen(numFlags uint64, slot Slot) error {
	// Only a slot that is not currently mapped may be opened.
	invariants.Assertf(s.live.isEmpty() || slot != s.status.ActiveSlot,
		"flags: reopening active slot %s in %s", slot, s.dir)

	capacity := CapacityBytes(numFlags, s.minCapacity)
	size, err := conv.Uint64ToInt(capacity)
	if err != nil {
		return errs.IO(err, "flags: capacity for %d flags in %s", numFlags, s.dir)
	}

	path := SlotPath(s.dir, slot)
	if err := fs.CreateWithLength(s.fs, path, int64(size)); err != nil {
		return errs.IO(err, "flags: size slot %s to %d bytes in %s", slot, size, s.dir)
	}

	m, err := mmap.OpenWritable(path)
	if err != nil {
		return errs.IO(err, "flags: map slot %s in %s", slot, s.dir)
	}
	if err := m.Advise(s.advice); err != nil {
		s.logger.Error("failed to advise flag mapping",
			"dir", s.dir,
			"slot", slot,
			"advice", s.advice,
			"error", err,
		)
	}

	view, err := bitset.NewView(m.Bytes(), 0)
	if err != nil {
		_ = m.Close()
		return errs.IO(err, "flags: bit view over slot %s in %s", slot, s.dir)
	}

	// Nothing below may fail half way: drop the old view before its mapping.
	s.bits = nil
	if err := s.live.replace(m); err != nil {
		s.logger.Error("failed to unmap previous flag slot", "dir", s.dir, "error", err)
	}
	s.bits = view
	return nil
}

// Dir returns the directory of the store.
func (s *Store) Dir() string {
	return s.dir
}

// Len returns the number of valid flags.
func (s *Store) Len() uint64 {
	if s.closed {
		return 0
	}
	return s.status.Len
}

// ActiveSlot returns the slot whose file currently holds the flags.
func (s *Store) ActiveSlot() Slot {
	if s.closed {
		return SlotA
	}
	return s.status.ActiveSlot
}

// Capacity returns the size in bytes of the active slot file.
func (s *Store) Capacity() uint64 {
	return CapacityBytes(s.Len(), s.minCapacity)
}

// Grow extends the store to newLen flags. New flags read as false.
// Shrinking is rejected with ErrInvalidArgument; equal lengths are a no-op.
//
// The new length and any slot rotation live only in memory until the
// Flusher runs.
func (s *Store) Grow(newLen uint64) error {
	s.closeChecker.AssertNotClosed()
	if s.closed {
		return errs.IO(mmap.ErrClosed, "flags: grow %s", s.dir)
	}

	cur := s.status.Len
	if newLen < cur {
		return errs.InvalidArgument("flags: cannot shrink %s from %d to %d", s.dir, cur, newLen)
	}
	if newLen == cur {
		return nil
	}

	if newLen > MaxLenForCapacity(cur, s.minCapacity) {
		if err := s.rotate(newLen); err != nil {
			return err
		}
	}

	s.status.Len = newLen
	return nil
}

// rotate moves the flags to the other slot, sized for newLen.
// On error the active slot, its mapping and the status are unchanged.
func (s *Store) rotate(newLen uint64) (err error) {
	start := time.Now()
	capacity := CapacityBytes(newLen, s.minCapacity)
	defer func() {
		s.metrics.RecordRotation(capacity, time.Since(start), err)
	}()

	from := s.status.ActiveSlot
	to := from.Other()

	if err := s.live.flush(); err != nil {
		return errs.IO(err, "flags: flush slot %s before rotation in %s", from, s.dir)
	}

	if _, err := fs.CopyFile(s.fs, SlotPath(s.dir, from), SlotPath(s.dir, to)); err != nil {
		return errs.IO(err, "flags: copy slot %s to %s in %s", from, to, s.dir)
	}

	if err := s.reopen(newLen, to); err != nil {
		return err
	}
	s.status.ActiveSlot = to

	s.logger.Info("rotated flag slot",
		"dir", s.dir,
		"from", from,
		"to", to,
		"len", newLen,
		"capacity", capacity,
	)
	return nil
}

// Get returns the flag at key. Keys at or beyond Len read as false.
func (s *Store) Get(key uint64) bool {
	s.closeChecker.AssertNotClosed()
	if s.closed || key >= s.status.Len {
		return false
	}
	return s.bits.Test(key)
}

// Set stores value at key and returns the previous value.
//
// Keys at or beyond Len are ignored and report false; callers must Grow
// first. Builds with invariants enabled panic instead.
func (s *Store) Set(key uint64, value bool) bool {
	s.closeChecker.AssertNotClosed()
	if s.closed {
		return false
	}
	invariants.Assertf(key < s.status.Len, "flags: set key %d beyond len %d in %s", key, s.status.Len, s.dir)
	if key >= s.status.Len {
		return false
	}
	return s.bits.Swap(key, value)
}

// Count returns the number of flags set to true.
func (s *Store) Count() uint64 {
	if s.closed {
		return 0
	}
	return s.bits.CountBelow(s.status.Len)
}

// Bitmap returns the keys of all flags set to true.
func (s *Store) Bitmap() *roaring64.Bitmap {
	bm := roaring64.New()
	if s.closed {
		return bm
	}
	s.bits.EachBelow(s.status.Len, bm.Add)
	return bm
}

// Flusher returns a callback that flushes the live flag mapping and then the
// status record, so the data is durable before the record that vouches for it.
//
// The callback flushes whatever mapping is live when it runs, so it stays
// valid across rotations, and it may run on any goroutine. After Close it
// fails with ErrIO.
func (s *Store) Flusher() mmap.Flusher {
	live := s.live
	status := s.statusMap
	dir := s.dir
	collector := s.metrics

	return func() (err error) {
		start := time.Now()
		defer func() {
			collector.RecordFlush(time.Since(start), err)
		}()

		if err := live.flush(); err != nil {
			return errs.IO(err, "flags: flush flags in %s", dir)
		}
		if err := status.Flush(); err != nil {
			return errs.IO(err, "flags: flush status in %s", dir)
		}
		return nil
	}
}

// Files returns the files that make up the durable state: the status record
// and the active slot file. The inactive slot file is not part of it.
func (s *Store) Files() []string {
	return []string{
		StatusPath(s.dir),
		SlotPath(s.dir, s.ActiveSlot()),
	}
}

// Close unmaps the store's files. It does not flush; run the Flusher first
// to persist changes. Close is idempotent.
func (s *Store) Close() error {
	if s.closed {
		return nil
	}
	s.closeChecker.Close()
	s.closed = true

	s.bits = nil
	err := s.live.close()
	s.status = nil
	err = errors.CombineErrors(err, s.statusMap.Close())
	return errs.IO(err, "flags: close %s", s.dir)
}
