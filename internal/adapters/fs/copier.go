package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"go.trai.ch/zerr"
)

// Copier recursively copies directory trees.
type Copier struct {
	walker *Walker
}

// NewCopier creates a new Copier.
func NewCopier(walker *Walker) *Copier {
	return &Copier{walker: walker}
}

// CopyTree copies the content of src into dst, overwriting files that exist in both.
// Directories are created as needed, file modes and symbolic links are kept.
// A failure leaves dst partially populated.
func (c *Copier) CopyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return copyErr(err, "failed to stat source", src)
	}
	if !info.IsDir() {
		return copyErr(errors.New("not a directory"), "source is not a directory", src)
	}
	if err := os.MkdirAll(dst, domain.DirPerm); err != nil {
		return copyErr(err, "failed to create directory", dst)
	}

	for e, err := range c.walker.Walk(src) {
		if err != nil {
			return copyErr(err, "failed to walk source", e.Path)
		}
		target := filepath.Join(dst, e.Rel)

		switch t := e.Dir.Type(); {
		case t.IsDir():
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return copyErr(err, "failed to create directory", target)
			}
		case t&os.ModeSymlink != 0:
			if err := copySymlink(e.Path, target); err != nil {
				return err
			}
		case t.IsRegular():
			if err := copyFile(e.Path, target); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return copyErr(err, "failed to stat file", src)
	}

	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return copyErr(err, "failed to open file", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm()) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return copyErr(err, "failed to create file", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return copyErr(err, "failed to copy file", dst)
	}
	if err := out.Close(); err != nil {
		return copyErr(err, "failed to close file", dst)
	}
	return nil
}

func copySymlink(src, dst string) error {
	link, err := os.Readlink(src)
	if err != nil {
		return copyErr(err, "failed to read link", src)
	}
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return copyErr(err, "failed to replace link", dst)
	}
	if err := os.Symlink(link, dst); err != nil {
		return copyErr(err, "failed to create link", dst)
	}
	return nil
}

func copyErr(err error, msg, path string) error {
	return errors.Join(domain.ErrWorkspaceCopyFailed, zerr.With(zerr.Wrap(err, msg), "path", path))
}
