// Package shell provides the process executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"github.com/a-nickol/maven-it-extension/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Run starts the build tool and blocks until it exits.
//
// Stdout and stderr are read through separate pipes by two goroutines so a
// child filling one pipe never stalls on the other. Every line is collected,
// copied to the invocation's log file and forwarded to the logger.
// A non-zero exit code is reported in the outcome, not as an error.
func (e *Executor) Run(ctx context.Context, inv domain.Invocation) (*domain.ExecutionOutcome, error) {
	cmd := exec.CommandContext(ctx, inv.Executable, inv.Args...) //nolint:gosec // executable is located by the orchestrator
	cmd.Dir = inv.Dir
	cmd.Env = resolveEnvironment(os.Environ(), inv.Env)

	stdoutFile, err := openLog(inv.StdoutLog)
	if err != nil {
		return nil, err
	}
	defer stdoutFile.Close() //nolint:errcheck // Closed explicitly after draining
	stderrFile, err := openLog(inv.StderrLog)
	if err != nil {
		return nil, err
	}
	defer stderrFile.Close() //nolint:errcheck // Closed explicitly after draining

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Join(domain.ErrProcessStartFailed, zerr.Wrap(err, "failed to open stdout pipe"))
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, errors.Join(domain.ErrProcessStartFailed, zerr.Wrap(err, "failed to open stderr pipe"))
	}

	if err := cmd.Start(); err != nil {
		return nil, errors.Join(domain.ErrProcessStartFailed,
			zerr.With(zerr.With(zerr.Wrap(err, "failed to start process"), "executable", inv.Executable), "dir", inv.Dir))
	}

	stdout := &logWriter{logger: e.logger, level: "info", prefix: prefix(inv.Label)}
	stderr := &logWriter{logger: e.logger, level: "warn", prefix: prefix(inv.Label)}

	var g errgroup.Group
	g.Go(func() error { return drain(stdoutPipe, stdoutFile, stdout) })
	g.Go(func() error { return drain(stderrPipe, stderrFile, stderr) })

	// Both pipes must be drained before Wait closes them.
	drainErr := g.Wait()
	waitErr := cmd.Wait()

	if err := ctx.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "process interrupted"), "executable", inv.Executable)
	}

	exitCode := 0
	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return nil, zerr.With(zerr.Wrap(waitErr, "failed to wait for process"), "executable", inv.Executable)
		}
		exitCode = exitErr.ExitCode()
	}
	if drainErr != nil {
		return nil, drainErr
	}
	if err := closeLogs(stdoutFile, stderrFile); err != nil {
		return nil, err
	}

	return domain.NewExecutionOutcome(exitCode, stdout.lines, stderr.lines), nil
}

func drain(pipe io.Reader, file io.Writer, lines *logWriter) error {
	_, err := io.Copy(io.MultiWriter(file, lines), pipe)
	_ = lines.Close()
	if err != nil {
		// Keep reading so the child never blocks on a full pipe.
		_, _ = io.Copy(io.Discard, pipe)
		return errors.Join(domain.ErrLogFileFailed, zerr.Wrap(err, "failed to capture output"))
	}
	return nil
}

func prefix(label string) string {
	if label == "" {
		return ""
	}
	return "[" + label + "] "
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
func (discard) Close() error                { return nil }

func openLog(path string) (io.WriteCloser, error) {
	if path == "" {
		return discard{}, nil
	}
	f, err := os.Create(path) //nolint:gosec // Path is derived from the workspace
	if err != nil {
		return nil, errors.Join(domain.ErrLogFileFailed, zerr.With(zerr.Wrap(err, "failed to create log file"), "path", path))
	}
	return f, nil
}

func closeLogs(files ...io.WriteCloser) error {
	for _, f := range files {
		if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			return errors.Join(domain.ErrLogFileFailed, zerr.Wrap(err, "failed to close log file"))
		}
	}
	return nil
}

// logWriter splits a stream into lines, collects them and forwards them to the logger.
type logWriter struct {
	logger ports.Logger
	level  string
	prefix string
	buf    []byte
	lines  []string
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := slices.Index(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing line without newline.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	w.lines = append(w.lines, msg)

	if w.logger == nil {
		return
	}
	if w.level == "info" {
		w.logger.Info(w.prefix + msg)
	} else {
		w.logger.Warn(w.prefix + msg)
	}
}

// resolveEnvironment merges the inherited environment with the invocation
// entries. Later entries override earlier ones. The result is sorted.
func resolveEnvironment(sysEnv, invEnv []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(invEnv))
	for _, entries := range [][]string{sysEnv, invEnv} {
		for _, entry := range entries {
			if k, v, ok := strings.Cut(entry, "="); ok && k != "" {
				envMap[k] = v
			}
		}
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}
