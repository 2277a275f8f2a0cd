package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"github.com/a-nickol/maven-it-extension/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ResultArchive = (*Archive)(nil)

// Archive persists published results as JSON files next to the logs of their test case.
type Archive struct{}

// NewArchive creates a new Archive.
func NewArchive() *Archive {
	return &Archive{}
}

// Write stores result in the result file of ws.
func (a *Archive) Write(result *domain.PublishedResult, ws domain.Workspace) error {
	path := ws.ResultFile()

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrArchiveWriteFailed, zerr.Wrap(err, "failed to marshal result"))
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return errors.Join(domain.ErrArchiveWriteFailed, zerr.With(zerr.Wrap(err, "failed to create directory for result"), "path", path))
	}

	//nolint:gosec // Path is derived from the workspace
	if err := os.WriteFile(path, append(data, '\n'), domain.FilePerm); err != nil {
		return errors.Join(domain.ErrArchiveWriteFailed, zerr.With(zerr.Wrap(err, "failed to write result"), "path", path))
	}
	return nil
}

// Read loads the result stored at path.
func (a *Archive) Read(path string) (*domain.PublishedResult, error) {
	//nolint:gosec // Path is provided by trusted caller
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrResultNotFound, "no archived result"), "path", path)
		}
		return nil, errors.Join(domain.ErrArchiveReadFailed, zerr.With(zerr.Wrap(err, "failed to read result"), "path", path))
	}

	var result domain.PublishedResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, errors.Join(domain.ErrArchiveReadFailed, zerr.With(zerr.Wrap(err, "failed to unmarshal result"), "path", path))
	}
	return &result, nil
}

// List loads every result archived below baseDir, ordered by test key and start time.
// A missing baseDir yields no results.
func (a *Archive) List(baseDir string) ([]*domain.PublishedResult, error) {
	var results []*domain.PublishedResult

	err := filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == baseDir && errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() {
			// Project copies and caches never hold archived results.
			if d.Name() == domain.ProjectDirName || d.Name() == domain.CacheDirName {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), domain.ResultFileSuffix) {
			return nil
		}

		result, err := a.Read(path)
		if err != nil {
			return err
		}
		results = append(results, result)
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrArchiveReadFailed) {
			return nil, err
		}
		return nil, errors.Join(domain.ErrArchiveReadFailed, zerr.With(zerr.Wrap(err, "failed to list results"), "path", baseDir))
	}

	slices.SortStableFunc(results, func(x, y *domain.PublishedResult) int {
		if c := strings.Compare(x.Key, y.Key); c != 0 {
			return c
		}
		return x.StartedAt.Compare(y.StartedAt)
	})
	return results, nil
}
