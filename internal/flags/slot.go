package flags

import (
	"fmt"
	"path/filepath"
)

const (
	statusFileName = "status.dat"
	slotFileA      = "flags_a.dat"
	slotFileB      = "flags_b.dat"
)

// Slot identifies one of the two alternating flag files.
type Slot uint64

const (
	// SlotA is the zero value, so a zero-filled status file names it.
	SlotA Slot = iota
	SlotB
)

// Other returns the slot a rotation moves to.
func (s Slot) Other() Slot {
	if s == SlotA {
		return SlotB
	}
	return SlotA
}

// FileName returns the base name of the slot's backing file.
func (s Slot) FileName() string {
	if s == SlotA {
		return slotFileA
	}
	return slotFileB
}

func (s Slot) valid() bool {
	return s == SlotA || s == SlotB
}

func (s Slot) String() string {
	switch s {
	case SlotA:
		return "A"
	case SlotB:
		return "B"
	default:
		return fmt.Sprintf("Slot(%d)", uint64(s))
	}
}

// StatusPath returns the path of the status record inside dir.
func StatusPath(dir string) string {
	return filepath.Join(dir, statusFileName)
}

// SlotPath returns the path of slot's backing file inside dir.
func SlotPath(dir string, slot Slot) string {
	return filepath.Join(dir, slot.FileName())
}
