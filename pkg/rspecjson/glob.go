package rspecjson

import (
	"fmt"
	"io/fs"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern matches result files in the working directory.
const DefaultPattern = "*.json"

// Glob returns the regular files in fsys matching pattern, in walk order.
// Directories that happen to match are skipped.
func Glob(fsys fs.FS, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}

	seen := make(map[string]bool, len(matches))
	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true
		info, err := fs.Stat(fsys, m)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", m, err)
		}
		if info.IsDir() {
			continue
		}
		files = append(files, m)
	}
	return files, nil
}
