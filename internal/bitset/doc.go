// Package bitset provides a bit-addressable view over memory-mapped bytes.
//
// Architecture:
//   - The mapped region is reinterpreted in place as native 64-bit words
//     (no copy) and handed to github.com/bits-and-blooms/bitset.
//   - Bit i lives in word i/64 at position i%64, least significant bit first,
//     which on little-endian hosts is bit i%8 of byte i/8.
//   - The view never grows: its length is fixed by the region it covers.
//
// Used internally for:
//   - The persistent flag vector (deleted/visited markers per point id)
package bitset
