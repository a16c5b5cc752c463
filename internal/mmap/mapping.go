package mmap

import (
	"os"
	"sync/atomic"
)

// Mapping represents a memory-mapped file.
// It owns the underlying byte slice and is responsible for unmapping it.
type Mapping struct {
	data   []byte
	size   int
	closed atomic.Bool
	// file is kept open for writable mappings so Flush can reach the file.
	file *os.File
	// unmap is the platform-specific function to unmap the memory.
	unmap func([]byte) error
}

// Open maps the file at path into memory.
// The file is mapped as read-only.
func Open(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	size, err := fileSize(f)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return &Mapping{}, nil
	}

	data, unmapFunc, err := osMap(f, size, false)
	if err != nil {
		return nil, err
	}

	return &Mapping{
		data:  data,
		size:  size,
		unmap: unmapFunc,
	}, nil
}

// OpenWritable maps an existing file at path for reading and writing.
// Stores into Bytes() reach the file; call Flush to make them durable.
func OpenWritable(path string) (*Mapping, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	size, err := fileSize(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	if size == 0 {
		return &Mapping{file: f}, nil
	}

	data, unmapFunc, err := osMap(f, size, true)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Mapping{
		data:  data,
		size:  size,
		file:  f,
		unmap: unmapFunc,
	}, nil
}

func fileSize(f *os.File) (int, error) {
	fi, err := f.Stat()
	if err != nil {
		return 0, err
	}
	size := fi.Size()
	if size < 0 || int64(int(size)) != size {
		return 0, ErrInvalidSize
	}
	return int(size), nil
}

// Close unmaps the memory and releases the file. It is idempotent.
// Close does not flush; pending stores reach the disk at the kernel's pace.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	var err error
	if m.unmap != nil && m.data != nil {
		err = m.unmap(m.data)
	}
	if m.file != nil {
		if closeErr := m.file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}

// Bytes returns the underlying byte slice.
// Warning: The slice is valid only until Close() is called.
// Accessing the slice after Close() results in undefined behavior (likely a crash).
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return m.size
}

// Writable reports whether the mapping was opened with OpenWritable.
func (m *Mapping) Writable() bool {
	return m.file != nil
}

// Advise provides hints to the kernel about how the memory will be accessed.
func (m *Mapping) Advise(pattern AccessPattern) error {
	if m.closed.Load() {
		return ErrClosed
	}
	if m.data == nil {
		return nil
	}
	return osAdvise(m.data, pattern)
}

// Flush synchronously writes dirty pages of a writable mapping to durable storage.
func (m *Mapping) Flush() error {
	if m.closed.Load() {
		return ErrClosed
	}
	if m.file == nil {
		return ErrReadOnly
	}
	if m.data == nil {
		return nil
	}
	return osFlush(m.data, m.file)
}

// Flusher returns a deferred Flush of this mapping.
func (m *Mapping) Flusher() Flusher {
	return m.Flush
}
