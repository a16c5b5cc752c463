// Package mmap provides memory-mapped file access for the flag and chunk stores.
//
// # Overview
//
// A Mapping owns one mapped region of one file. Read-only mappings serve
// inspection tools; writable mappings back the persistent flag vector and the
// vector chunks, where every mutation is a plain store into the mapped pages
// and durability is reached by an explicit Flush.
//
// # Usage
//
//	m, err := mmap.OpenWritable("chunk_0.mmap")
//	if err != nil { ... }
//	defer m.Close()
//
//	// Typed view over the whole mapping
//	vecs, _ := mmap.Slice[float32](m)
//	vecs[0] = 1.5
//
//	// Persist the pages, now or later
//	flush := m.Flusher()
//	_ = flush()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2), msync(2) with MS_SYNC, madvise(2)
//   - Windows: CreateFileMapping/MapViewOfFile, FlushViewOfFile followed by a
//     file sync (madvise is a no-op)
//
// # Thread Safety
//
// Close is idempotent and protected by an atomic flag. Flush may run
// concurrently with readers and writers of the mapped bytes. Callers must
// ensure that no goroutine touches Bytes() or a typed view after Close.
package mmap
