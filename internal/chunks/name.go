package chunks

import (
	"path/filepath"
	"strconv"
	"strings"
)

const (
	chunkPrefix = "chunk_"
	chunkSuffix = ".mmap"
)

// ChunkPath returns the path of chunk id inside dir.
func ChunkPath(dir string, id int) string {
	return filepath.Join(dir, chunkPrefix+strconv.Itoa(id)+chunkSuffix)
}

// ParseChunkName returns the id encoded in a chunk file name.
//
// Only the canonical decimal form written by ChunkPath is accepted: no sign,
// no leading zeros. Other names, such as chunk_01.mmap, are not chunks.
func ParseChunkName(name string) (int, bool) {
	digits, ok := strings.CutPrefix(name, chunkPrefix)
	if !ok {
		return 0, false
	}
	digits, ok = strings.CutSuffix(digits, chunkSuffix)
	if !ok || digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	if len(digits) > 1 && digits[0] == '0' {
		return 0, false
	}
	id, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return id, true
}
