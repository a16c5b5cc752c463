package mmap

import (
	"fmt"
	"unsafe"
)

// As reinterprets the start of the mapping as a single value of type T.
//
// T must be a fixed-size type without Go pointers. The returned pointer
// aliases the mapped memory and is valid only until the mapping is closed.
func As[T any](m *Mapping) (*T, error) {
	data := m.Bytes()
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(data) < size {
		return nil, fmt.Errorf("%w: need %d bytes for %T, mapping has %d", ErrOutOfBounds, size, zero, len(data))
	}
	if err := checkAlignment(data, int(unsafe.Alignof(zero))); err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(data))), nil //nolint:gosec // unsafe is required for mmap access
}

// Slice reinterprets the whole mapping as a slice of T.
//
// Trailing bytes that do not form a whole element are not part of the slice.
// The slice aliases the mapped memory and is valid only until the mapping is
// closed.
func Slice[T any](m *Mapping) ([]T, error) {
	data := m.Bytes()
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return nil, fmt.Errorf("%w: zero-sized element %T", ErrOutOfBounds, zero)
	}
	n := len(data) / size
	if n == 0 {
		return nil, nil
	}
	if err := checkAlignment(data, int(unsafe.Alignof(zero))); err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(data))), n), nil //nolint:gosec // unsafe is required for mmap access
}

func checkAlignment(data []byte, align int) error {
	if len(data) == 0 || align <= 1 {
		return nil
	}
	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(data)))
	if ptr%uintptr(align) != 0 {
		return fmt.Errorf("%w: address 0x%x, want %d-byte alignment", ErrUnaligned, ptr, align)
	}
	return nil
}
