// Package app implements the application layer for mvnit.
package app

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"github.com/a-nickol/maven-it-extension/internal/core/ports"
	"github.com/a-nickol/maven-it-extension/internal/engine/plan"
	"go.trai.ch/zerr"
)

// App runs test cases through the pipeline: prepare the workspace, read the
// component coordinates, build the plan, locate the executable, run it,
// read the resulting model and publish the result.
type App struct {
	resolver  ports.WorkspaceResolver
	models    ports.ModelReader
	builder   *plan.Builder
	locator   ports.ExecutableLocator
	executor  ports.Executor
	publisher ports.ResultPublisher
	archive   ports.ResultArchive
	tracer    ports.Tracer
	logger    ports.Logger
	now       func() time.Time
}

// New creates a new App instance.
func New(
	resolver ports.WorkspaceResolver,
	models ports.ModelReader,
	builder *plan.Builder,
	locator ports.ExecutableLocator,
	executor ports.Executor,
	publisher ports.ResultPublisher,
	archive ports.ResultArchive,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		resolver:  resolver,
		models:    models,
		builder:   builder,
		locator:   locator,
		executor:  executor,
		publisher: publisher,
		archive:   archive,
		tracer:    tracer,
		logger:    log,
		now:       time.Now,
	}
}

// WithClock replaces the clock used to stamp results.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Execute runs a single test case and publishes its result.
// A non-zero exit code of the build tool is part of the result, not an error.
func (a *App) Execute(ctx context.Context, settings domain.Settings, tc domain.TestCase) (*domain.PublishedResult, error) {
	key := tc.Identity.Key()
	ctx, span := a.tracer.Start(ctx, "execute", ports.WithAttribute(ports.CaseAttribute, key))
	defer span.End()

	result, err := a.execute(ctx, settings, tc)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("exit_code", result.Outcome.ExitCode)
	return result, nil
}

func (a *App) execute(ctx context.Context, settings domain.Settings, tc domain.TestCase) (*domain.PublishedResult, error) {
	if err := tc.Validate(); err != nil {
		return nil, err
	}
	key := tc.Identity.Key()

	var ws domain.Workspace
	err := a.phase(ctx, "prepare", key, func(ctx context.Context) error {
		var err error
		ws, err = a.resolver.Prepare(ctx, settings, tc)
		return err
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to prepare workspace"), "case", key)
	}

	var coords domain.Coordinates
	err = a.phase(ctx, "coordinates", key, func(context.Context) error {
		var err error
		coords, err = a.coordinates(settings)
		return err
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read component coordinates"), "case", key)
	}

	var args domain.Plan
	_ = a.phase(ctx, "plan", key, func(ctx context.Context) error {
		args = a.builder.Build(tc, ws, coords)
		a.tracer.EmitPlan(ctx, args)
		return nil
	})

	var executable string
	err = a.phase(ctx, "locate", key, func(context.Context) error {
		path, ok := a.locator.Locate(settings)
		if !ok {
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrExecutableNotFound, "executable not on search path"),
				"executable", settings.Executable), "search_path", settings.SearchPath)
		}
		executable = path
		return nil
	})
	if err != nil {
		return nil, err
	}

	inv := domain.Invocation{
		Dir:        ws.ProjectDir,
		Executable: executable,
		Args:       args,
		Env:        environment(settings.Environment, tc.Environment),
		StdoutLog:  ws.StdoutLog(),
		StderrLog:  ws.StderrLog(),
		Label:      key,
	}

	started := a.now()
	var outcome *domain.ExecutionOutcome
	err = a.phase(ctx, "run", key, func(ctx context.Context) error {
		var err error
		outcome, err = a.executor.Run(ctx, inv)
		return err
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to run build tool"), "case", key)
	}
	duration := a.now().Sub(started)

	var model *domain.ProjectModel
	err = a.phase(ctx, "model", key, func(context.Context) error {
		var err error
		model, err = a.models.Read(ws.Descriptor())
		return err
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read project model"), "case", key)
	}

	result := &domain.PublishedResult{
		Key:      key,
		Identity: tc.Identity,
		Outcome:  *outcome,
		Log: domain.LogFiles{
			Stdout: inv.StdoutLog,
			Stderr: inv.StderrLog,
		},
		Project:    domain.ProjectResult{Dir: ws.ProjectDir, Model: model},
		Cache:      domain.CacheResult{Dir: ws.CacheDir},
		Plan:       args,
		Executable: executable,
		StartedAt:  started,
		Duration:   duration,
	}

	err = a.phase(ctx, "publish", key, func(context.Context) error {
		return a.publisher.Publish(result, ws)
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to publish result"), "case", key)
	}

	return result, nil
}

// phase runs fn inside a child span named name.
func (a *App) phase(ctx context.Context, name, key string, fn func(context.Context) error) error {
	ctx, span := a.tracer.Start(ctx, name, ports.WithAttribute(ports.CaseAttribute, key))
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// coordinates reads the component descriptor. Without a configured
// descriptor the coordinates are empty.
func (a *App) coordinates(settings domain.Settings) (domain.Coordinates, error) {
	if settings.Descriptor == "" {
		return domain.Coordinates{}, nil
	}
	model, err := a.models.Read(settings.Descriptor)
	if err != nil {
		return domain.Coordinates{}, err
	}
	return model.Coordinates(), nil
}

// environment renders the settings environment overlaid with the case
// environment as sorted KEY=VALUE entries.
func environment(layers ...map[string]string) []string {
	merged := make(map[string]string)
	for _, layer := range layers {
		maps.Copy(merged, layer)
	}
	if len(merged) == 0 {
		return nil
	}
	env := make([]string, 0, len(merged))
	for _, k := range slices.Sorted(maps.Keys(merged)) {
		env = append(env, k+"="+merged[k])
	}
	return env
}

// Verify reports an error when result does not satisfy the expectation of tc.
func Verify(tc domain.TestCase, result *domain.PublishedResult) error {
	if tc.Expect.Matches(result.Outcome.Status) {
		return nil
	}
	err := zerr.Wrap(domain.ErrUnexpectedOutcome, "build finished with an unexpected status")
	err = zerr.With(err, "case", tc.Identity.Key())
	err = zerr.With(err, "expected", tc.Expect.String())
	err = zerr.With(err, "status", result.Outcome.Status.String())
	return zerr.With(err, "exit_code", result.Outcome.ExitCode)
}

// Results lists the results archived below the workspace root of settings.
func (a *App) Results(settings domain.Settings) ([]*domain.PublishedResult, error) {
	results, err := a.archive.List(settings.BaseDir())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to list results")
	}
	return results, nil
}

// Clean removes every workspace below the workspace root of settings.
func (a *App) Clean(_ context.Context, settings domain.Settings) error {
	dir := settings.BaseDir()
	a.logger.Info(fmt.Sprintf("removing %s...", dir))
	if err := os.RemoveAll(dir); err != nil {
		return errors.Join(domain.ErrWorkspaceCleanFailed, zerr.With(zerr.Wrap(err, "failed to remove workspaces"), "path", dir))
	}
	a.logger.Info(fmt.Sprintf("removed %s", dir))
	return nil
}
