package vecmmap

import (
	"github.com/hupe1980/vecmmap/internal/chunks"
	"github.com/hupe1980/vecmmap/internal/flags"
	"github.com/hupe1980/vecmmap/internal/fs"
	"github.com/hupe1980/vecmmap/internal/mmap"
)

type (
	// FlagStore is a persistent, growable vector of boolean flags.
	FlagStore = flags.Store
	// FlagStatus is the persisted status record of a FlagStore.
	FlagStatus = flags.Status
	// FlagInfo describes a flag store directory as found on disk.
	FlagInfo = flags.Info
	// Slot identifies one of the two alternating flag files.
	Slot = flags.Slot
	// Flusher persists state captured when it was obtained.
	Flusher = mmap.Flusher
	// Element is the set of numeric types a chunk can hold.
	Element = chunks.Element
	// ChunkInfo describes a chunk file found on disk.
	ChunkInfo = chunks.Info
)

// Chunk is one memory-mapped chunk file viewed as a slice of T.
type Chunk[T Element] = chunks.Chunk[T]

const (
	SlotA = flags.SlotA
	SlotB = flags.SlotB

	// DefaultMinFlagCapacity is the smallest flag slot file, in bytes.
	DefaultMinFlagCapacity = flags.DefaultMinCapacity
)

// OpenFlags opens the flag store in dir, creating an empty one if needed.
func OpenFlags(dir string, opts ...Option) (*FlagStore, error) {
	return flags.Open(dir, applyOptions(opts).flagOptions()...)
}

// InspectFlags reads a flag store directory without modifying it.
func InspectFlags(dir string) (FlagInfo, error) {
	return flags.Inspect(dir)
}

// FlagCapacityBytes returns the slot file size used for numFlags flags.
func FlagCapacityBytes(numFlags, minCapacity uint64) uint64 {
	return flags.CapacityBytes(numFlags, minCapacity)
}

// DiscoverChunks maps every chunk in dir, in id order.
func DiscoverChunks[T Element](dir string, opts ...Option) ([]*Chunk[T], error) {
	return chunks.Discover[T](dir, applyOptions(opts).chunkOptions()...)
}

// CreateChunk creates (or resizes) chunk id in dir to exactly lengthBytes
// and maps it.
func CreateChunk[T Element](dir string, id int, lengthBytes int64, opts ...Option) (*Chunk[T], error) {
	return chunks.Create[T](dir, id, lengthBytes, applyOptions(opts).chunkOptions()...)
}

// ScanChunks lists the chunk files of dir without mapping them.
func ScanChunks(dir string) ([]ChunkInfo, error) {
	return chunks.Scan(fs.Default, dir)
}

// FlushChunks flushes every chunk concurrently.
func FlushChunks[T Element](cs []*Chunk[T]) error {
	return chunks.FlushAll(cs)
}

// CloseChunks closes every chunk.
func CloseChunks[T Element](cs []*Chunk[T]) error {
	return chunks.CloseAll(cs)
}
