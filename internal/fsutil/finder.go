// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// ErrNoExtensions is returned when FindFiles is called without an extension.
var ErrNoExtensions = errors.New("at least one extension is required")

// FindFiles recursively searches rootPath for files whose extension matches one
// of exts, compared case-insensitively. Directories whose name starts with a
// dot are not entered. Paths are returned in lexical walk order.
func FindFiles(rootPath string, exts ...string) ([]string, error) {
	if len(exts) == 0 {
		return nil, ErrNoExtensions
	}
	wanted := make([]string, len(exts))
	for i, e := range exts {
		wanted[i] = strings.ToLower(e)
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != rootPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if slices.Contains(wanted, strings.ToLower(filepath.Ext(d.Name()))) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
