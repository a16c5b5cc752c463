package chunks

import (
	"cmp"
	"os"
	"path/filepath"
	"slices"

	"github.com/hupe1980/vecmmap/internal/errs"
	"github.com/hupe1980/vecmmap/internal/fs"
)

// Info describes a chunk file found on disk.
type Info struct {
	ID   int
	Path string
	Size int64
}

// Scan lists the chunk files of dir in ascending id order without mapping
// them. Files that do not carry a chunk name, and anything that is not a
// regular file, are ignored.
//
// The ids must form the dense run 0..N-1; otherwise Scan fails with
// ErrCorruptState naming the first missing id.
func Scan(fsys fs.FileSystem, dir string) ([]Info, error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return nil, errs.IO(err, "chunks: read directory %s", dir)
	}

	var found []Info
	for _, entry := range entries {
		id, ok := ParseChunkName(entry.Name())
		if !ok {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		info, err := entryInfo(fsys, entry, path)
		if err != nil {
			return nil, errs.IO(err, "chunks: stat chunk %d in %s", id, dir)
		}
		if !info.Mode().IsRegular() {
			continue
		}
		found = append(found, Info{ID: id, Path: path, Size: info.Size()})
	}

	slices.SortFunc(found, func(a, b Info) int { return cmp.Compare(a.ID, b.ID) })
	for i, info := range found {
		if info.ID != i {
			return nil, errs.CorruptState("chunks: missing chunk %d in %s", i, dir)
		}
	}
	return found, nil
}

// entryInfo follows symlinks, so a link to a regular file counts as a chunk.
func entryInfo(fsys fs.FileSystem, entry os.DirEntry, path string) (os.FileInfo, error) {
	if entry.Type()&os.ModeSymlink != 0 {
		return fsys.Stat(path)
	}
	return entry.Info()
}
