package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/a-nickol/maven-it-extension/cmd/mvnit/commands"
	"github.com/a-nickol/maven-it-extension/internal/adapters/store"
	"github.com/a-nickol/maven-it-extension/internal/app"
	"github.com/a-nickol/maven-it-extension/internal/build"
	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"github.com/a-nickol/maven-it-extension/internal/core/ports"
	"github.com/a-nickol/maven-it-extension/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type mockApp struct {
	runFunc     func(ctx context.Context, settings domain.Settings, cases []domain.TestCase, opts app.RunOptions) ([]app.Report, error)
	resultsFunc func(settings domain.Settings) ([]*domain.PublishedResult, error)
	cleanFunc   func(ctx context.Context, settings domain.Settings) error
}

func (m *mockApp) Run(ctx context.Context, settings domain.Settings, cases []domain.TestCase, opts app.RunOptions) ([]app.Report, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, settings, cases, opts)
	}
	return nil, nil
}

func (m *mockApp) Results(settings domain.Settings) ([]*domain.PublishedResult, error) {
	if m.resultsFunc != nil {
		return m.resultsFunc(settings)
	}
	return nil, nil
}

func (m *mockApp) Clean(ctx context.Context, settings domain.Settings) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, settings)
	}
	return nil
}

// jsonLogger records whether JSON output was requested.
type jsonLogger struct {
	*mocks.MockLogger
	json bool
}

func (l *jsonLogger) SetJSON(enable bool) {
	l.json = enable
}

func settingsFor(dir string) domain.Settings {
	s := domain.DefaultSettings()
	s.BuildDir = filepath.Join(dir, s.BuildDir)
	s.ITsDir = filepath.Join(dir, s.ITsDir)
	s.ComponentDir = filepath.Join(dir, s.ComponentDir)
	s.Descriptor = filepath.Join(dir, s.Descriptor)
	return s
}

func testCase(class, method string) domain.TestCase {
	return domain.TestCase{Identity: domain.NewTestIdentity(class, method)}
}

func passed(tc domain.TestCase) app.Report {
	return app.Report{
		Case: tc,
		Result: &domain.PublishedResult{
			Key:      tc.Identity.Key(),
			Identity: tc.Identity,
			Outcome:  domain.ExecutionOutcome{Status: domain.StatusSuccessful},
			Duration: 1500 * time.Millisecond,
		},
	}
}

func newCLI(t *testing.T, a commands.Application) (*commands.CLI, *mocks.MockConfigLoader, *mocks.MockLogger, string) {
	t.Helper()
	return newCLIWithResults(t, a, store.NewRegistry())
}

func newCLIWithResults(t *testing.T, a commands.Application, results ports.ResultStore) (*commands.CLI, *mocks.MockConfigLoader, *mocks.MockLogger, string) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	log := mocks.NewMockLogger(ctrl)
	dir := t.TempDir()

	cli := commands.New(a, results, loader, log)
	cli.SetWorkingDir(dir)
	return cli, loader, log, dir
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedSettings domain.Settings
		var capturedCases []domain.TestCase
		var capturedOpts app.RunOptions

		mock := &mockApp{
			runFunc: func(_ context.Context, settings domain.Settings, cases []domain.TestCase, opts app.RunOptions) ([]app.Report, error) {
				capturedSettings = settings
				capturedCases = cases
				capturedOpts = opts
				reports := make([]app.Report, 0, len(cases))
				for _, tc := range cases {
					reports = append(reports, passed(tc))
				}
				return reports, nil
			},
		}

		cli, loader, _, dir := newCLI(t, mock)
		cases := []domain.TestCase{testCase("com.example.BasicIT", "first"), testCase("com.example.BasicIT", "second")}
		loader.EXPECT().LoadSettings(dir).Return(settingsFor(dir), nil)
		loader.EXPECT().LoadCases(filepath.Join(dir, "cases.yaml")).Return(cases, nil)

		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{
			"run", "cases.yaml",
			"-j", "2",
			"--build-dir", "out",
			"--mvn", "/opt/maven/bin/mvn",
			"--progress", "never",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, capturedOpts.Jobs)
		assert.NotNil(t, capturedOpts.OnDone)
		assert.Equal(t, cases, capturedCases)
		assert.Equal(t, filepath.Join(dir, "out"), capturedSettings.BuildDir)
		assert.Equal(t, domain.DefaultComponentDir(filepath.Join(dir, "out")), capturedSettings.ComponentDir)
		assert.Equal(t, "/opt/maven/bin/mvn", capturedSettings.Executable)
		assert.Contains(t, out.String(), "✓ com.example.BasicIT#first")
		assert.Contains(t, out.String(), "2 passed, 0 failed")
	})

	t.Run("merges env file into the settings", func(t *testing.T) {
		var capturedSettings domain.Settings
		mock := &mockApp{
			runFunc: func(_ context.Context, settings domain.Settings, cases []domain.TestCase, _ app.RunOptions) ([]app.Report, error) {
				capturedSettings = settings
				return []app.Report{passed(cases[0])}, nil
			},
		}

		cli, loader, _, dir := newCLI(t, mock)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "its.env"), []byte("MAVEN_OPTS=-Xmx1g\nCI=true\n"), 0o600))

		settings := settingsFor(dir)
		settings.Environment = map[string]string{"MAVEN_OPTS": "-Xmx512m", "JAVA_HOME": "/opt/jdk"}
		loader.EXPECT().LoadSettings(dir).Return(settings, nil)
		loader.EXPECT().LoadCases(filepath.Join(dir, "cases.yaml")).Return([]domain.TestCase{testCase("a.B", "c")}, nil)

		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"run", "cases.yaml", "--env-file", "its.env", "--progress", "never"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, map[string]string{
			"MAVEN_OPTS": "-Xmx1g",
			"JAVA_HOME":  "/opt/jdk",
			"CI":         "true",
		}, capturedSettings.Environment)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		failed := testCase("com.example.BasicIT", "broken")
		mock := &mockApp{
			runFunc: func(_ context.Context, _ domain.Settings, cases []domain.TestCase, _ app.RunOptions) ([]app.Report, error) {
				return []app.Report{
						passed(cases[0]),
						{Case: failed, Err: domain.ErrUnexpectedOutcome},
					},
					zerr.Wrap(domain.ErrCaseExecutionFailed, "1 of 2 cases failed")
			},
		}

		cli, loader, _, dir := newCLI(t, mock)
		loader.EXPECT().LoadSettings(dir).Return(settingsFor(dir), nil)
		loader.EXPECT().LoadCases(filepath.Join(dir, "cases.yaml")).
			Return([]domain.TestCase{testCase("com.example.BasicIT", "ok"), failed}, nil)

		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"run", "cases.yaml", "--progress", "never"})

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrCaseExecutionFailed)
		assert.Contains(t, out.String(), "✗ com.example.BasicIT#broken")
		assert.Contains(t, out.String(), "1 passed, 1 failed")
	})

	t.Run("reads case details from published results", func(t *testing.T) {
		registry := store.NewRegistry()
		broken := testCase("com.example.BasicIT", "broken")
		mock := &mockApp{
			runFunc: func(_ context.Context, _ domain.Settings, cases []domain.TestCase, _ app.RunOptions) ([]app.Report, error) {
				registry.Publish(broken.Identity.Key(), &domain.PublishedResult{
					Key:      broken.Identity.Key(),
					Identity: broken.Identity,
					Outcome:  domain.ExecutionOutcome{Status: domain.StatusFailure, ExitCode: 2},
					Log:      domain.LogFiles{Stdout: "/logs/mvn-stdout.log", Stderr: "/logs/mvn-stderr.log"},
				})
				return []app.Report{{Case: cases[0], Err: domain.ErrUnexpectedOutcome}},
					zerr.Wrap(domain.ErrCaseExecutionFailed, "1 of 1 cases failed")
			},
		}

		cli, loader, _, dir := newCLIWithResults(t, mock, registry)
		loader.EXPECT().LoadSettings(dir).Return(settingsFor(dir), nil)
		loader.EXPECT().LoadCases(filepath.Join(dir, "cases.yaml")).Return([]domain.TestCase{broken}, nil)

		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		cli.SetArgs([]string{"run", "cases.yaml", "--progress", "never"})

		require.ErrorIs(t, cli.Execute(context.Background()), domain.ErrCaseExecutionFailed)
		assert.Contains(t, out.String(), "✗ com.example.BasicIT#broken (Failure, exit code 2)")
		assert.Contains(t, out.String(), "stdout: /logs/mvn-stdout.log")
	})

	t.Run("warns when no cases are declared", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(context.Context, domain.Settings, []domain.TestCase, app.RunOptions) ([]app.Report, error) {
				panic("should not be called")
			},
		}

		cli, loader, log, dir := newCLI(t, mock)
		loader.EXPECT().LoadSettings(dir).Return(settingsFor(dir), nil)
		loader.EXPECT().LoadCases(filepath.Join(dir, "empty.yaml")).Return(nil, nil)
		log.EXPECT().Warn("no test cases to run")

		cli.SetArgs([]string{"run", "empty.yaml"})
		require.NoError(t, cli.Execute(context.Background()))
	})

	t.Run("returns settings errors", func(t *testing.T) {
		cli, loader, _, dir := newCLI(t, &mockApp{})
		loader.EXPECT().LoadSettings(dir).Return(domain.Settings{}, domain.ErrConfigParseFailed)

		cli.SetArgs([]string{"run", "cases.yaml"})
		require.ErrorIs(t, cli.Execute(context.Background()), domain.ErrConfigParseFailed)
	})

	t.Run("shows usage when no case files provided", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(context.Context, domain.Settings, []domain.TestCase, app.RunOptions) ([]app.Report, error) {
				panic("should not be called")
			},
		}

		cli, _, _, _ := newCLI(t, mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"run"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Usage:")
	})
}

func TestCommands_Results(t *testing.T) {
	result := passed(testCase("com.example.BasicIT", "build")).Result
	result.StartedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	newResultsCLI := func(t *testing.T) (*commands.CLI, *bytes.Buffer) {
		t.Helper()
		var capturedBase string
		mock := &mockApp{
			resultsFunc: func(settings domain.Settings) ([]*domain.PublishedResult, error) {
				capturedBase = settings.BaseDir()
				return []*domain.PublishedResult{result}, nil
			},
		}
		cli, loader, _, dir := newCLI(t, mock)
		loader.EXPECT().LoadSettings(dir).Return(settingsFor(dir), nil)
		t.Cleanup(func() {
			assert.Equal(t, settingsFor(dir).BaseDir(), capturedBase)
		})

		out := new(bytes.Buffer)
		cli.SetOutput(out, new(bytes.Buffer))
		return cli, out
	}

	t.Run("table", func(t *testing.T) {
		cli, out := newResultsCLI(t)
		cli.SetArgs([]string{"results"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, out.String(), "CASE")
		assert.Contains(t, out.String(), "com.example.BasicIT#build")
		assert.Contains(t, out.String(), "Successful")
		assert.Contains(t, out.String(), "2026-03-01T12:00:00Z")
	})

	t.Run("json", func(t *testing.T) {
		cli, out := newResultsCLI(t)
		cli.SetArgs([]string{"results", "--json"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, out.String(), `"key": "com.example.BasicIT#build"`)
		assert.Contains(t, out.String(), `"status": "Successful"`)
	})
}

func TestCommands_Clean(t *testing.T) {
	var capturedBuildDir string
	mock := &mockApp{
		cleanFunc: func(_ context.Context, settings domain.Settings) error {
			capturedBuildDir = settings.BuildDir
			return nil
		},
	}

	cli, loader, _, dir := newCLI(t, mock)
	loader.EXPECT().LoadSettings(dir).Return(settingsFor(dir), nil)
	cli.SetArgs([]string{"clean", "--build-dir", "/tmp/its-build"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "/tmp/its-build", capturedBuildDir)
}

func TestCommands_JSONLogs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	ctrl := gomock.NewController(t)
	log := &jsonLogger{MockLogger: mocks.NewMockLogger(ctrl)}

	cli := commands.New(&mockApp{}, store.NewRegistry(), mocks.NewMockConfigLoader(ctrl), log)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs([]string{"version", "--json-logs"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, log.json)
}

func TestCommands_Version(t *testing.T) {
	cli, _, _, _ := newCLI(t, &mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
