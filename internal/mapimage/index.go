package mapimage

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Index maps lowercase map names (file stems) to filesystem paths.
// PNG wins over other formats for the same stem since it is lossless.
type Index struct {
	entries map[string]string
}

// BuildIndex walks dir recursively and records every supported map file.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}

	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !IsMapFile(path) {
			return nil
		}
		stem := stemOf(path)
		existing, exists := idx.entries[stem]
		if !exists || (isPNG(path) && !isPNG(existing)) {
			idx.entries[stem] = path
		}
		return nil
	})

	return idx
}

// ResolvePath returns the path for a map name, or ("", false).
// The name may carry a directory prefix or extension, e.g. "assets\\london-map.png".
func (idx *Index) ResolvePath(name string) (string, bool) {
	path, ok := idx.entries[stemOf(strings.ReplaceAll(name, "\\", "/"))]
	return path, ok
}

// Canonical returns the indexed stem for name, the form used for output
// paths, or ("", false) if no map matches.
func (idx *Index) Canonical(name string) (string, bool) {
	stem := stemOf(strings.ReplaceAll(name, "\\", "/"))
	if _, ok := idx.entries[stem]; !ok {
		return "", false
	}
	return stem, true
}

// Names returns all indexed map names in sorted order.
func (idx *Index) Names() []string {
	names := make([]string, 0, len(idx.entries))
	for n := range idx.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of indexed maps.
func (idx *Index) Len() int {
	return len(idx.entries)
}

func stemOf(path string) string {
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

func isPNG(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".png"
}
