// Package fs provides file system adapters for discovering unit files and
// hashing artifacts.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/zerr"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files below root, skipping version control
// directories.
func (w *Walker) WalkFiles(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if name := d.Name(); name == ".git" || name == ".jj" {
					return filepath.SkipDir
				}
				return nil
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// FindUnits implements ports.UnitFinder: it returns every file below root
// whose name ends in ext, sorted lexicographically.
func (w *Walker) FindUnits(root, ext string) ([]string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to canonicalize root"), "root", root)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read root"), "root", root)
	}

	var units []string
	for path := range w.WalkFiles(abs) {
		if strings.HasSuffix(filepath.Base(path), ext) {
			units = append(units, path)
		}
	}
	sort.Strings(units)
	return units, nil
}
