package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"go.trai.ch/zerr"
)

// Verifier checks whether a shared workspace was completely populated.
// Population writes the ready marker last, so a workspace without it is
// treated as incomplete.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// Ready reports whether the project directory and the ready marker of ws exist.
// The second result is the source fingerprint recorded in the marker.
func (v *Verifier) Ready(ws domain.Workspace) (bool, string, error) {
	if _, err := os.Stat(ws.ProjectDir); err != nil {
		if os.IsNotExist(err) {
			return false, "", nil
		}
		return false, "", zerr.With(zerr.Wrap(err, "failed to stat project"), "path", ws.ProjectDir)
	}

	path := markerPath(ws)
	data, err := os.ReadFile(path) //nolint:gosec // Path is derived from the workspace
	if err != nil {
		if os.IsNotExist(err) {
			return false, "", nil
		}
		return false, "", zerr.With(zerr.Wrap(err, "failed to read ready marker"), "path", path)
	}
	return true, strings.TrimSpace(string(data)), nil
}

// MarkReady records the source fingerprint in the ready marker of ws.
func (v *Verifier) MarkReady(ws domain.Workspace, fingerprint string) error {
	path := markerPath(ws)
	if err := os.WriteFile(path, []byte(fingerprint+"\n"), domain.FilePerm); err != nil { //nolint:gosec // Marker is not sensitive
		return errors.Join(domain.ErrWorkspaceCreateFailed, zerr.With(zerr.Wrap(err, "failed to write ready marker"), "path", path))
	}
	return nil
}

// Clear removes the ready marker of ws. A missing marker is not an error.
func (v *Verifier) Clear(ws domain.Workspace) error {
	path := markerPath(ws)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Join(domain.ErrWorkspaceCleanFailed, zerr.With(zerr.Wrap(err, "failed to remove ready marker"), "path", path))
	}
	return nil
}

func markerPath(ws domain.Workspace) string {
	return filepath.Join(ws.TestCaseDir, domain.ReadyMarkerName)
}
