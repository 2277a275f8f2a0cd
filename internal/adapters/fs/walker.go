// Package fs provides file system adapters for preparing test workspaces.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Entry is a single file system entry found by the Walker.
type Entry struct {
	// Path is the absolute or root-prefixed path of the entry.
	Path string
	// Rel is the path relative to the walked root.
	Rel string
	// Dir is the directory entry.
	Dir fs.DirEntry
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk yields every entry below root in lexical order, the root itself excluded.
// A walk error is yielded once and ends the iteration.
func (w *Walker) Walk(root string) iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				yield(Entry{Path: path}, err)
				return filepath.SkipAll
			}
			if path == root {
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				yield(Entry{Path: path}, err)
				return filepath.SkipAll
			}

			if !yield(Entry{Path: path, Rel: rel, Dir: d}, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// WalkFiles yields the regular files below root whose names match none of the ignore patterns.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for e, err := range w.Walk(root) {
			if err != nil {
				return
			}
			if ignored(e.Dir.Name(), ignores) || !e.Dir.Type().IsRegular() {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

func ignored(name string, ignores []string) bool {
	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
