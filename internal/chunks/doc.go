// Package chunks stores fixed-width numeric elements in a directory of
// memory-mapped chunk files.
//
// Each chunk lives in its own file named chunk_<id>.mmap and keeps the byte
// length it was created with. Stores grow by adding chunks with the next id,
// never by resizing an existing one, so the ids in a healthy directory always
// form the dense run 0..N-1. Discover refuses a directory with a gap.
//
// A Chunk has a single owner. Nothing in this package guards against two
// handles writing the same file.
package chunks
