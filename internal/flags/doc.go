// Package flags implements a persistent, growable vector of boolean flags
// backed by memory-mapped files.
//
// # On-disk layout
//
//	status.dat   16 bytes: {Len uint64, ActiveSlot uint64}, native byte order
//	flags_a.dat  slot A, CapacityBytes(Len) bytes, bit i = flag i
//	flags_b.dat  slot B, same layout
//
// Exactly one slot is active. The active slot's file, at the capacity implied
// by Len, always holds a valid image of the first Len flags; the other file is
// stale and never read.
//
// # Growth and rotation
//
// Capacity is a power of two number of bytes with a configurable floor
// (DefaultMinCapacity). Growing within the current capacity only bumps Len.
// Growing past it rotates: the active file is flushed and byte-copied onto the
// other slot's path, the copy is extended and mapped, the live mapping is
// swapped, and the status record is pointed at the new slot. The status record
// is not flushed by Grow: until the caller runs the Flusher, a crash reverts to
// the previous slot and length, which are untouched.
//
// # Concurrency
//
// A Store has a single owner that calls Grow, Set and Get. The callback
// returned by Flusher may run on another goroutine at any time; it flushes
// whichever mapping is live when it runs.
package flags
