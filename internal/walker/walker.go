package walker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrPathNotFound is returned when the base directory does not exist.
var ErrPathNotFound = errors.New("path not found")

// Walker finds files matching configured extensions.
// It carries no per-run state and is safe to reuse.
type Walker struct {
	// extensions are the file extensions to match, normalized to lower case
	// with a leading dot ("html" and ".html" both configure ".html").
	extensions []string

	// recursive controls whether subdirectories are descended into.
	recursive bool
}

// New creates a Walker for the given extensions.
// Extensions match case-insensitively and may be written with or without the
// leading dot.
func New(extensions []string, recursive bool) *Walker {
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return &Walker{extensions: normalized, recursive: recursive}
}

// Find returns the paths under root whose names match a configured
// extension, in lexical walk order so that runs are deterministic.
// In non-recursive mode only files directly inside root are considered.
func (w *Walker) Find(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, root)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrPathNotFound, root)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !w.recursive && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if w.match(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return paths, nil
}

// match reports whether the file name ends with one of the configured
// extensions, case-insensitively.
func (w *Walker) match(name string) bool {
	name = strings.ToLower(name)
	for _, ext := range w.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
