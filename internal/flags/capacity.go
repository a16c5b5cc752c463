package flags

import "math/bits"

// DefaultMinCapacity is the smallest size of a slot file, in bytes.
const DefaultMinCapacity uint64 = 1 << 20

// CapacityBytes returns the size of the slot file that holds numFlags flags:
// the next power of two of ceil(numFlags/8), but never less than minCapacity.
//
// Rotation is derived from this function alone, so it must stay stable for
// existing directories to reopen correctly.
func CapacityBytes(numFlags, minCapacity uint64) uint64 {
	needed := numFlags / 8
	if numFlags%8 != 0 {
		needed++
	}
	return max(minCapacity, nextPowerOfTwo(needed))
}

// MaxLenForCapacity returns how many flags fit in the slot file sized for
// length flags, i.e. the longest length reachable without a rotation.
func MaxLenForCapacity(length, minCapacity uint64) uint64 {
	return CapacityBytes(length, minCapacity) * 8
}

func nextPowerOfTwo(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len64(n-1)
}

func validMinCapacity(c uint64) bool {
	return c >= 8 && c&(c-1) == 0
}
