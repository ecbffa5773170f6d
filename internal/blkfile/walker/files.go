package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// DefaultPattern matches the block files of a node's blocks directory.
const DefaultPattern = "blk*.dat"

// ListFiles returns the regular files in dir whose names match pattern, sorted ascending by name.
func ListFiles(dir, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("stat blocks dir: %w", err)
	}
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	files := make([]string, 0, len(matches))
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, path)
	}
	slices.Sort(files)
	return files, nil
}
