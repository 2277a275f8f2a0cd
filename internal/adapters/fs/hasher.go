package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Hasher fingerprints project trees.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeTreeHash computes a single hash over the relative paths and contents
// of all regular files below root. Files matching ignores are left out.
func (h *Hasher) ComputeTreeHash(root string, ignores ...string) (string, error) {
	if _, err := os.Stat(root); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to stat tree"), "path", root)
	}

	digest := xxhash.New()
	for e := range h.walker.WalkFiles(root, ignores) {
		if err := h.hashFile(e, digest); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func (h *Hasher) hashFile(e Entry, digest io.Writer) error {
	// Relative paths keep the hash independent of where the tree lives.
	_, _ = digest.Write([]byte(filepath.ToSlash(e.Rel)))
	_, _ = digest.Write([]byte{0})

	hash, err := h.ComputeFileHash(e.Path)
	if err != nil {
		return err
	}

	if err := binary.Write(digest, binary.LittleEndian, hash); err != nil {
		return zerr.Wrap(err, "failed to write hash to digest")
	}
	return nil
}
