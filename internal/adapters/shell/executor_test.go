package shell_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/a-nickol/maven-it-extension/internal/adapters/shell"
	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"github.com/a-nickol/maven-it-extension/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func shellInvocation(t *testing.T, script string) domain.Invocation {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	return domain.Invocation{
		Dir:        t.TempDir(),
		Executable: "/bin/sh",
		Args:       domain.Plan{"-c", script},
	}
}

func TestExecutor_Run_SeparateStreams(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		mockLogger.EXPECT().Info("[com.example.IT#m] line1"),
		mockLogger.EXPECT().Info("[com.example.IT#m] line2"),
	)
	mockLogger.EXPECT().Warn("[com.example.IT#m] oops")

	inv := shellInvocation(t, "echo line1; echo oops >&2; echo line2")
	inv.Label = "com.example.IT#m"

	outcome, err := shell.NewExecutor(mockLogger).Run(context.Background(), inv)
	require.NoError(t, err)

	assert.Equal(t, 0, outcome.ExitCode)
	assert.Equal(t, domain.StatusSuccessful, outcome.Status)
	assert.Equal(t, []string{"line1", "line2"}, outcome.Stdout)
	assert.Equal(t, []string{"oops"}, outcome.Stderr)
}

func TestExecutor_Run_NonZeroExitIsNotAnError(t *testing.T) {
	inv := shellInvocation(t, "echo failing >&2; exit 3")

	outcome, err := shell.NewExecutor(nil).Run(context.Background(), inv)
	require.NoError(t, err)

	assert.Equal(t, 3, outcome.ExitCode)
	assert.Equal(t, domain.StatusFailure, outcome.Status)
	assert.Equal(t, []string{"failing"}, outcome.Stderr)
}

func TestExecutor_Run_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("part1part2").Times(1)

	inv := shellInvocation(t, "printf part1; sleep 0.1; printf part2")

	outcome, err := shell.NewExecutor(mockLogger).Run(context.Background(), inv)
	require.NoError(t, err)
	assert.Equal(t, []string{"part1part2"}, outcome.Stdout)
}

func TestExecutor_Run_LargeOutputOnBothStreams(t *testing.T) {
	const lines = 100000

	// Each stream receives several pipe buffers worth of data. Stderr is
	// written first so a reader draining only stdout would stall the child.
	inv := shellInvocation(t, "yes err | head -n 100000 >&2; yes out | head -n 100000; yes err | head -n 100000 >&2")
	dir := t.TempDir()
	inv.StdoutLog = filepath.Join(dir, "mvn-stdout.log")
	inv.StderrLog = filepath.Join(dir, "mvn-stderr.log")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	outcome, err := shell.NewExecutor(nil).Run(ctx, inv)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSuccessful, outcome.Status)
	assert.Len(t, outcome.Stdout, lines)
	assert.Len(t, outcome.Stderr, 2*lines)

	stderrLog, err := os.ReadFile(inv.StderrLog)
	require.NoError(t, err)
	assert.Equal(t, 2*lines, strings.Count(string(stderrLog), "err\n"))
}

func TestExecutor_Run_LogFiles(t *testing.T) {
	inv := shellInvocation(t, "echo hello; echo warning >&2")
	dir := t.TempDir()
	inv.StdoutLog = filepath.Join(dir, "first-mvn-stdout.log")
	inv.StderrLog = filepath.Join(dir, "first-mvn-stderr.log")

	_, err := shell.NewExecutor(nil).Run(context.Background(), inv)
	require.NoError(t, err)

	stdout, err := os.ReadFile(inv.StdoutLog)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(stdout))

	stderr, err := os.ReadFile(inv.StderrLog)
	require.NoError(t, err)
	assert.Equal(t, "warning\n", string(stderr))
}

func TestExecutor_Run_LogFileFailure(t *testing.T) {
	inv := shellInvocation(t, "echo hello")
	inv.StdoutLog = filepath.Join(t.TempDir(), "missing", "mvn-stdout.log")

	_, err := shell.NewExecutor(nil).Run(context.Background(), inv)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLogFileFailed))
}

func TestExecutor_Run_Environment(t *testing.T) {
	t.Setenv("MVNIT_INHERITED", "inherited")
	inv := shellInvocation(t, `echo "$MVNIT_INHERITED $MVNIT_CASE"`)
	inv.Env = []string{"MVNIT_CASE=case"}

	outcome, err := shell.NewExecutor(nil).Run(context.Background(), inv)
	require.NoError(t, err)

	assert.Equal(t, []string{"inherited case"}, outcome.Stdout)
}

func TestExecutor_Run_WorkingDirectory(t *testing.T) {
	inv := shellInvocation(t, "pwd -P")
	want, err := filepath.EvalSymlinks(inv.Dir)
	require.NoError(t, err)

	outcome, err := shell.NewExecutor(nil).Run(context.Background(), inv)
	require.NoError(t, err)

	assert.Equal(t, []string{want}, outcome.Stdout)
}

func TestExecutor_Run_StartFailures(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires POSIX permissions")
	}
	dir := t.TempDir()
	notExecutable := filepath.Join(dir, "mvn")
	require.NoError(t, os.WriteFile(notExecutable, []byte("#!/bin/sh\n"), 0o600))

	tests := []struct {
		name string
		inv  domain.Invocation
	}{
		{"missing executable", domain.Invocation{Dir: dir, Executable: filepath.Join(dir, "absent")}},
		{"not executable", domain.Invocation{Dir: dir, Executable: notExecutable}},
		{"missing directory", domain.Invocation{Dir: filepath.Join(dir, "absent"), Executable: "/bin/sh"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := shell.NewExecutor(nil).Run(context.Background(), tt.inv)
			require.Error(t, err)
			assert.Nil(t, outcome)
			assert.True(t, errors.Is(err, domain.ErrProcessStartFailed), "got %v", err)
		})
	}
}

func TestExecutor_Run_Canceled(t *testing.T) {
	inv := shellInvocation(t, "exec sleep 30")
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	_, err := shell.NewExecutor(nil).Run(ctx, inv)

	require.ErrorIs(t, err, context.Canceled)
}
