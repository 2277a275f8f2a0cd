package fs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"github.com/a-nickol/maven-it-extension/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.WorkspaceResolver = (*Resolver)(nil)

// Resolver lays out and populates isolated test workspaces.
type Resolver struct {
	logger   ports.Logger
	copier   *Copier
	hasher   *Hasher
	verifier *Verifier
	locks    *keyedMutex
}

// NewResolver creates a new Resolver.
func NewResolver(logger ports.Logger, copier *Copier, hasher *Hasher, verifier *Verifier) *Resolver {
	return &Resolver{
		logger:   logger,
		copier:   copier,
		hasher:   hasher,
		verifier: verifier,
		locks:    newKeyedMutex(),
	}
}

// Resolve computes the workspace layout of tc.
//
// Fresh copy workspaces live in <base>/<class path>/<method> and log with the
// "mvn" prefix. Shared project workspaces live in <base>/<class path>/<name>-mvn
// and log with the "<method>-mvn" prefix, so methods sharing the directory keep
// separate logs.
func (r *Resolver) Resolve(settings domain.Settings, tc domain.TestCase) (domain.Workspace, error) {
	if err := tc.Validate(); err != nil {
		return domain.Workspace{}, err
	}

	classPath := tc.Identity.ClassPath()
	ws := domain.Workspace{
		BaseDir: settings.BaseDir(),
		Shared:  tc.Shared(),
	}

	if ws.Shared {
		ws.TestCaseDir = filepath.Join(ws.BaseDir, classPath, domain.SanitizeName(tc.ProjectName())+domain.SharedSuffix)
		ws.LogPrefix = tc.Identity.MethodDir() + domain.SharedSuffix
	} else {
		ws.TestCaseDir = filepath.Join(ws.BaseDir, classPath, tc.Identity.MethodDir())
		ws.LogPrefix = domain.DefaultLogPrefix
	}
	ws.ProjectDir = filepath.Join(ws.TestCaseDir, domain.ProjectDirName)
	ws.CacheDir = filepath.Join(ws.TestCaseDir, domain.CacheDirName)

	if dir, ok := tc.SourceDir.Get(); ok {
		ws.SourceDir = dir
	} else {
		ws.SourceDir = filepath.Join(settings.ITsDir, classPath, domain.SanitizeName(tc.ProjectName()))
	}

	return ws, nil
}

// Prepare resolves the workspace of tc and populates it.
// A shared workspace that is already complete keeps its project; only the
// predefined repository of tc is copied onto its cache.
func (r *Resolver) Prepare(ctx context.Context, settings domain.Settings, tc domain.TestCase) (domain.Workspace, error) {
	ws, err := r.Resolve(settings, tc)
	if err != nil {
		return domain.Workspace{}, err
	}

	if !ws.Shared {
		if err := r.populate(ctx, settings, ws); err != nil {
			return domain.Workspace{}, err
		}
		if err := r.overlayRepository(ctx, tc, ws); err != nil {
			return domain.Workspace{}, err
		}
		return ws, nil
	}

	unlock := r.locks.Lock(ws.ProjectDir)
	defer unlock()

	if err := r.prepareShared(ctx, settings, ws); err != nil {
		return domain.Workspace{}, err
	}
	if err := r.overlayRepository(ctx, tc, ws); err != nil {
		return domain.Workspace{}, err
	}
	return ws, nil
}

// prepareShared populates a shared workspace unless a complete copy exists.
// Callers hold the workspace lock.
func (r *Resolver) prepareShared(ctx context.Context, settings domain.Settings, ws domain.Workspace) error {
	ready, recorded, err := r.verifier.Ready(ws)
	if err != nil {
		return errors.Join(domain.ErrWorkspaceCreateFailed, err)
	}
	if ready {
		r.logger.Info(fmt.Sprintf("reusing shared project %s", ws.ProjectDir))
		r.checkFingerprint(ws, recorded)
		return nil
	}

	if _, err := os.Stat(ws.ProjectDir); err == nil {
		r.logger.Warn(fmt.Sprintf("shared project %s has no ready marker, recreating it", ws.ProjectDir))
	}
	if err := r.verifier.Clear(ws); err != nil {
		return err
	}
	if err := r.populate(ctx, settings, ws); err != nil {
		return err
	}

	fingerprint, err := r.hasher.ComputeTreeHash(ws.SourceDir)
	if err != nil {
		return errors.Join(domain.ErrWorkspaceCreateFailed, err)
	}
	return r.verifier.MarkReady(ws, fingerprint)
}

func (r *Resolver) populate(ctx context.Context, settings domain.Settings, ws domain.Workspace) error {
	if err := os.RemoveAll(ws.ProjectDir); err != nil {
		return errors.Join(domain.ErrWorkspaceCleanFailed, zerr.With(zerr.Wrap(err, "failed to remove project"), "path", ws.ProjectDir))
	}
	for _, dir := range []string{ws.ProjectDir, ws.CacheDir} {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return errors.Join(domain.ErrWorkspaceCreateFailed, zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir))
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.copier.CopyTree(ws.SourceDir, ws.ProjectDir); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return r.copyComponent(settings, ws)
}

// overlayRepository copies the predefined repository of tc onto the cache.
// Shared workspaces receive the overlay of every method that uses them.
func (r *Resolver) overlayRepository(ctx context.Context, tc domain.TestCase, ws domain.Workspace) error {
	repo, ok := predefinedRepository(tc, ws)
	if !ok {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.logger.Info(fmt.Sprintf("copying predefined repository %s", repo))
	return r.copier.CopyTree(repo, ws.CacheDir)
}

func (r *Resolver) copyComponent(settings domain.Settings, ws domain.Workspace) error {
	if settings.ComponentDir == "" {
		return nil
	}
	info, err := os.Stat(settings.ComponentDir)
	if err != nil || !info.IsDir() {
		r.logger.Info(fmt.Sprintf("component payload %s not found, skipping", settings.ComponentDir))
		return nil
	}
	return r.copier.CopyTree(settings.ComponentDir, ws.CacheDir)
}

func (r *Resolver) checkFingerprint(ws domain.Workspace, recorded string) {
	current, err := r.hasher.ComputeTreeHash(ws.SourceDir)
	if err != nil || recorded == "" || current == recorded {
		return
	}
	r.logger.Warn(fmt.Sprintf("sources of shared project %s changed since it was copied, remove %s to refresh it",
		ws.SourceDir, ws.TestCaseDir))
}

// predefinedRepository returns the repository overlaid onto the cache.
// An explicit directory wins over a path relative to the project sources.
func predefinedRepository(tc domain.TestCase, ws domain.Workspace) (string, bool) {
	if dir, ok := tc.PredefinedRepository.Dir.Get(); ok && dir != "" {
		return dir, true
	}
	if path, ok := tc.PredefinedRepository.Path.Get(); ok && path != "" {
		if filepath.IsAbs(path) {
			return path, true
		}
		return filepath.Join(ws.SourceDir, path), true
	}
	return "", false
}
