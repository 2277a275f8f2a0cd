package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/a-nickol/maven-it-extension/internal/adapters/store"
	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workspaceFor(base string, id domain.TestIdentity, prefix string) domain.Workspace {
	dir := filepath.Join(base, id.ClassPath(), id.MethodDir())
	return domain.Workspace{
		BaseDir:     base,
		TestCaseDir: dir,
		ProjectDir:  filepath.Join(dir, domain.ProjectDirName),
		CacheDir:    filepath.Join(dir, domain.CacheDirName),
		LogPrefix:   prefix,
	}
}

func TestArchive_WriteRead(t *testing.T) {
	base := t.TempDir()
	result := sampleResult("com.example.IT", "first")
	result.RunID = "01J00000000000000000000000"
	result.Outcome = *domain.NewExecutionOutcome(1, nil, nil)
	result.StartedAt = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	result.Duration = 1500 * time.Millisecond
	ws := workspaceFor(base, result.Identity, "mvn")
	a := store.NewArchive()

	require.NoError(t, a.Write(result, ws))
	assert.FileExists(t, filepath.Join(ws.TestCaseDir, "mvn-result.json"))

	got, err := a.Read(ws.ResultFile())
	require.NoError(t, err)

	assert.Equal(t, result.RunID, got.RunID)
	assert.Equal(t, result.Identity, got.Identity)
	assert.Equal(t, 1, got.Outcome.ExitCode)
	assert.Equal(t, domain.StatusFailure, got.Outcome.Status)
	assert.Equal(t, result.Plan, got.Plan)
	assert.Equal(t, result.Project.Model.ArtifactID, got.Project.Model.ArtifactID)
	assert.True(t, result.StartedAt.Equal(got.StartedAt))
	assert.Equal(t, result.Duration, got.Duration)
}

func TestArchive_Read_Errors(t *testing.T) {
	a := store.NewArchive()

	_, err := a.Read(filepath.Join(t.TempDir(), "missing-result.json"))
	assert.True(t, errors.Is(err, domain.ErrResultNotFound))

	corrupt := filepath.Join(t.TempDir(), "mvn-result.json")
	require.NoError(t, os.WriteFile(corrupt, []byte("{"), 0o600))
	_, err = a.Read(corrupt)
	assert.True(t, errors.Is(err, domain.ErrArchiveReadFailed))
}

func TestArchive_Write_Error(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "blocked")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	ws := domain.Workspace{TestCaseDir: filepath.Join(blocker, "case"), LogPrefix: "mvn"}

	err := store.NewArchive().Write(sampleResult("a.B", "m"), ws)

	assert.True(t, errors.Is(err, domain.ErrArchiveWriteFailed))
}

func TestArchive_List(t *testing.T) {
	base := t.TempDir()
	a := store.NewArchive()
	early := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	second := sampleResult("com.example.IT", "second")
	require.NoError(t, a.Write(second, workspaceFor(base, second.Identity, "mvn")))

	first := sampleResult("com.example.IT", "first")
	first.StartedAt = early.Add(time.Minute)
	require.NoError(t, a.Write(first, workspaceFor(base, first.Identity, "mvn")))

	// Shared workspaces hold one result file per method.
	shared := domain.NewTestIdentity("com.example.SharedIT", "setup")
	sharedWs := workspaceFor(base, shared, "")
	sharedWs.TestCaseDir += domain.SharedSuffix
	for _, method := range []string{"b", "a"} {
		r := sampleResult("com.example.SharedIT", method)
		sharedWs.LogPrefix = method + domain.SharedSuffix
		require.NoError(t, a.Write(r, sharedWs))
	}

	// Files inside the project copy are ignored.
	ws := workspaceFor(base, first.Identity, "mvn")
	require.NoError(t, os.MkdirAll(ws.ProjectDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(ws.ProjectDir, "x-result.json"), []byte("{"), 0o600))

	results, err := a.List(base)
	require.NoError(t, err)

	keys := make([]string, 0, len(results))
	for _, r := range results {
		keys = append(keys, r.Key)
	}
	assert.Equal(t, []string{
		"com.example.IT#first",
		"com.example.IT#second",
		"com.example.SharedIT#a",
		"com.example.SharedIT#b",
	}, keys)
}

func TestArchive_List_MissingBase(t *testing.T) {
	results, err := store.NewArchive().List(filepath.Join(t.TempDir(), "missing"))

	require.NoError(t, err)
	assert.Empty(t, results)
}
