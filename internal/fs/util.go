package fs

import (
	"io"
	"os"
)

// CreateWithLength makes sure a file exists at path and is exactly size bytes
// long. A new file is zero-filled; an existing file keeps its prefix and is
// truncated or zero-extended to size.
func CreateWithLength(fsys FileSystem, path string, size int64) error {
	f, err := fsys.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return fsys.Truncate(path, size)
}

// CopyFile copies the bytes of src over dst, creating or truncating dst.
// The destination is not synced; callers flush through the mapping they
// open on it.
func CopyFile(fsys FileSystem, src, dst string) (int64, error) {
	in, err := fsys.OpenFile(src, os.O_RDONLY, 0)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := fsys.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(out, in)
	if closeErr := out.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return n, err
}

// Exists reports whether path exists. Errors other than "not exist" are returned.
func Exists(fsys FileSystem, path string) (bool, error) {
	_, err := fsys.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
