package batch

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Index maps lowercase scene names (file stems) to scene file paths.
// A .yaml file takes priority over a .yml file with the same stem.
type Index struct {
	entries map[string]string // stem.lower() → full path
}

// BuildIndex walks dir and its subdirectories for scene files.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}

	filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		stem := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))

		existing, exists := idx.entries[stem]
		if !exists {
			idx.entries[stem] = path
		} else if ext == ".yaml" && strings.ToLower(filepath.Ext(existing)) == ".yml" {
			idx.entries[stem] = path
		}
		return nil
	})

	return idx
}

// ResolvePath returns the path for a scene name, or ("", false). The name
// may carry a directory or extension.
func (idx *Index) ResolvePath(name string) (string, bool) {
	base := filepath.Base(filepath.ToSlash(name))
	stem := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))

	path, ok := idx.entries[stem]
	return path, ok
}

// Names returns the indexed scene names in sorted order.
func (idx *Index) Names() []string {
	names := make([]string, 0, len(idx.entries))
	for n := range idx.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Jobs returns one job per indexed scene, sorted by name.
func (idx *Index) Jobs() []Job {
	names := idx.Names()
	jobs := make([]Job, len(names))
	for i, n := range names {
		jobs[i] = Job{Name: n, Path: idx.entries[n]}
	}
	return jobs
}

// Len returns the number of indexed scenes.
func (idx *Index) Len() int {
	return len(idx.entries)
}
