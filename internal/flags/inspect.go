package flags

import (
	"github.com/hupe1980/vecmmap/internal/bitset"
	"github.com/hupe1980/vecmmap/internal/errs"
	"github.com/hupe1980/vecmmap/internal/mmap"
)

// Info describes a flag store directory as found on disk.
type Info struct {
	Status
	StatusFile string
	SlotFile   string
	SlotBytes  int
	SetCount   uint64
}

// ReadStatus reads the status record of the store in dir without creating,
// resizing or locking anything.
func ReadStatus(dir string) (Status, error) {
	m, err := mmap.Open(StatusPath(dir))
	if err != nil {
		return Status{}, errs.IO(err, "flags: open status file in %s", dir)
	}
	defer m.Close()

	status, err := decodeStatus(m, dir)
	if err != nil {
		return Status{}, err
	}
	return *status, nil
}

// Inspect reads the status record and counts the set flags of the active
// slot, read-only. Bytes of the slot file beyond Len are not counted.
func Inspect(dir string) (Info, error) {
	status, err := ReadStatus(dir)
	if err != nil {
		return Info{}, err
	}

	info := Info{
		Status:     status,
		StatusFile: StatusPath(dir),
		SlotFile:   SlotPath(dir, status.ActiveSlot),
	}

	m, err := mmap.Open(info.SlotFile)
	if err != nil {
		return Info{}, errs.IO(err, "flags: open slot %s in %s", status.ActiveSlot, dir)
	}
	defer m.Close()

	info.SlotBytes = m.Size()
	if uint64(m.Size())*8 < status.Len {
		return Info{}, errs.CorruptState("flags: slot %s in %s holds %d bytes, too small for %d flags",
			status.ActiveSlot, dir, m.Size(), status.Len)
	}

	data := m.Bytes()
	view, err := bitset.NewView(data[:len(data)-len(data)%8], 0)
	if err != nil {
		return Info{}, errs.IO(err, "flags: bit view over slot %s in %s", status.ActiveSlot, dir)
	}
	info.SetCount = view.CountBelow(status.Len)
	return info, nil
}
