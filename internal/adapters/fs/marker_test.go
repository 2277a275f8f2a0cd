package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/a-nickol/maven-it-extension/internal/adapters/fs"
	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier(t *testing.T) {
	dir := t.TempDir()
	ws := domain.Workspace{TestCaseDir: dir, ProjectDir: filepath.Join(dir, "project")}
	v := fs.NewVerifier()

	ready, _, err := v.Ready(ws)
	require.NoError(t, err)
	assert.False(t, ready, "missing project is not ready")

	require.NoError(t, os.MkdirAll(ws.ProjectDir, 0o750))
	ready, _, err = v.Ready(ws)
	require.NoError(t, err)
	assert.False(t, ready, "project without marker is not ready")

	require.NoError(t, v.MarkReady(ws, "0123456789abcdef"))
	ready, fingerprint, err := v.Ready(ws)
	require.NoError(t, err)
	assert.True(t, ready)
	assert.Equal(t, "0123456789abcdef", fingerprint)

	require.NoError(t, v.Clear(ws))
	require.NoError(t, v.Clear(ws), "clearing twice is not an error")
	ready, _, err = v.Ready(ws)
	require.NoError(t, err)
	assert.False(t, ready)
}

func TestVerifier_MarkReady_MissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	ws := domain.Workspace{TestCaseDir: dir, ProjectDir: filepath.Join(dir, "project")}

	err := fs.NewVerifier().MarkReady(ws, "x")

	require.ErrorIs(t, err, domain.ErrWorkspaceCreateFailed)
}
