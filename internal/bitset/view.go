package bitset

import (
	"errors"
	"fmt"
	"unsafe"

	bbs "github.com/bits-and-blooms/bitset"
)

// ErrUnaligned is returned when the viewed region does not start on, or
// does not span, whole 64-bit words.
var ErrUnaligned = errors.New("bitset: region is not word aligned")

// View is a fixed-length bit sequence backed by borrowed memory.
//
// A View does not own its memory. It must be dropped before the memory it
// views is unmapped.
type View struct {
	bits *bbs.BitSet
}

// NewView reinterprets data[byteOffset:] as a bit sequence.
func NewView(data []byte, byteOffset int) (*View, error) {
	if byteOffset < 0 || byteOffset > len(data) {
		return nil, fmt.Errorf("bitset: offset %d outside region of %d bytes", byteOffset, len(data))
	}
	region := data[byteOffset:]
	if len(region)%8 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrUnaligned, len(region))
	}
	if len(region) == 0 {
		return &View{bits: bbs.From(nil)}, nil
	}
	ptr := unsafe.Pointer(unsafe.SliceData(region))
	if uintptr(ptr)%8 != 0 {
		return nil, fmt.Errorf("%w: address 0x%x", ErrUnaligned, uintptr(ptr))
	}
	words := unsafe.Slice((*uint64)(ptr), len(region)/8) //nolint:gosec // unsafe is required for mmap access
	return &View{bits: bbs.From(words)}, nil
}

// Len returns the number of addressable bits.
func (v *View) Len() uint64 {
	return uint64(v.bits.Len())
}

// Test returns the bit at i, or false if i is beyond the view.
func (v *View) Test(i uint64) bool {
	return v.bits.Test(uint(i))
}

// Swap stores value at i and returns the previous bit.
// Indices beyond the view are ignored and report false.
func (v *View) Swap(i uint64, value bool) bool {
	if i >= v.Len() {
		// The library would grow its word slice, detaching it from the mapping.
		return false
	}
	prev := v.bits.Test(uint(i))
	v.bits.SetTo(uint(i), value)
	return prev
}

// CountBelow returns the number of set bits with index < n.
func (v *View) CountBelow(n uint64) uint64 {
	var count uint64
	for i, ok := v.bits.NextSet(0); ok && uint64(i) < n; i, ok = v.bits.NextSet(i + 1) {
		count++
	}
	return count
}

// EachBelow calls fn for every set bit with index < n, in ascending order.
func (v *View) EachBelow(n uint64, fn func(i uint64)) {
	for i, ok := v.bits.NextSet(0); ok && uint64(i) < n; i, ok = v.bits.NextSet(i + 1) {
		fn(uint64(i))
	}
}
