// Package fs provides filesystem abstractions for testability and fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: Represents an open file with read/write/sync capabilities
//   - [FileSystem]: Abstracts filesystem operations (open, stat, truncate, etc.)
//
// On top of them it implements the two file primitives the stores need:
// [CreateWithLength] (create-or-resize to an exact byte length) and
// [CopyFile] (plain byte copy used when the flag store rotates slots).
//
// # Implementations
//
//   - [LocalFS]: Production implementation using standard os package
//   - [FaultyFS]: Test utility for fault injection (simulate I/O errors)
//
// # Usage
//
// Production code should use fs.Default (which is [LocalFS]):
//
//	err := fs.CreateWithLength(fs.Default, path, 1<<20)
//
// Tests can inject [FaultyFS] to simulate failures:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("flags_b.dat", fs.Fault{FailOnOpen: true})
//	// inject ffs into component under test
//
// # Design Notes
//
// This package intentionally does NOT include context.Context parameters.
// Filesystem operations are typically fast and non-interruptible at the
// syscall level.
//
// Memory mapping itself goes through the os package directly (see package
// mmap), because it needs a real file descriptor.
package fs
