// Package vecmmap provides crash-safe, memory-mapped persistence primitives
// for a vector store.
//
// Two independent stores live here:
//
//   - A FlagStore is a growable vector of boolean flags (for example
//     "deleted" markers). It keeps two alternating slot files and a small
//     status record naming the live one, so a crash in the middle of a
//     resize never loses flags that were flushed before it.
//   - Chunks hold fixed-width numeric elements in a directory of
//     chunk_<id>.mmap files. Each chunk keeps its created length; a store
//     grows by creating the next chunk.
//
// # Flags
//
//	flags, err := vecmmap.OpenFlags("./data/deleted")
//	if err != nil {
//	    return err
//	}
//	defer flags.Close()
//
//	flush := flags.Flusher()
//	_ = flags.Grow(1_000_000)
//	flags.Set(42, true)
//	_ = flush() // durable from here on
//
// Grow and Set only touch memory. Nothing is durable until the flush callback
// runs; the callback may be called from any goroutine, for example a periodic
// background flusher.
//
// # Chunks
//
//	chunk, err := vecmmap.CreateChunk[float32]("./data/vectors", 0, 4<<20)
//	...
//	chunks, err := vecmmap.DiscoverChunks[float32]("./data/vectors")
//
// DiscoverChunks returns the chunks in id order and fails with
// ErrCorruptState when an id is missing.
//
// # Errors
//
// Every failure matches exactly one of ErrIO, ErrInvalidArgument or
// ErrCorruptState with errors.Is. Messages carry the directory, slot or chunk
// id involved.
package vecmmap
