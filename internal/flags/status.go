package flags

import (
	"unsafe"

	"github.com/hupe1980/vecmmap/internal/errs"
	"github.com/hupe1980/vecmmap/internal/fs"
	"github.com/hupe1980/vecmmap/internal/mmap"
)

// Status is the persisted status record. It is read and written in place
// through a typed overlay of status.dat.
type Status struct {
	Len        uint64
	ActiveSlot Slot
}

// StatusSize is the exact size of status.dat.
const StatusSize = int(unsafe.Sizeof(Status{}))

// openStatus maps status.dat, creating it zero-filled (Len 0, slot A) when absent.
func openStatus(fsys fs.FileSystem, dir string) (*mmap.Mapping, *Status, error) {
	path := StatusPath(dir)

	exists, err := fs.Exists(fsys, path)
	if err != nil {
		return nil, nil, errs.IO(err, "flags: stat status file in %s", dir)
	}
	if !exists {
		if err := fs.CreateWithLength(fsys, path, int64(StatusSize)); err != nil {
			return nil, nil, errs.IO(err, "flags: create status file in %s", dir)
		}
	}

	m, err := mmap.OpenWritable(path)
	if err != nil {
		return nil, nil, errs.IO(err, "flags: map status file in %s", dir)
	}

	status, err := decodeStatus(m, dir)
	if err != nil {
		_ = m.Close()
		return nil, nil, err
	}
	return m, status, nil
}

func decodeStatus(m *mmap.Mapping, dir string) (*Status, error) {
	if m.Size() < StatusSize {
		return nil, errs.CorruptState("flags: status file in %s is %d bytes, want %d", dir, m.Size(), StatusSize)
	}
	status, err := mmap.As[Status](m)
	if err != nil {
		return nil, errs.IO(err, "flags: overlay status record in %s", dir)
	}
	if !status.ActiveSlot.valid() {
		return nil, errs.CorruptState("flags: status file in %s names unknown %s", dir, status.ActiveSlot)
	}
	return status, nil
}
