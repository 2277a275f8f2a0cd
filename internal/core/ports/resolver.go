package ports

import (
	"context"

	"github.com/a-nickol/maven-it-extension/internal/core/domain"
)

// WorkspaceResolver defines the interface for preparing test workspaces.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type WorkspaceResolver interface {
	// Resolve computes the workspace layout of a test case without touching the disk.
	Resolve(settings domain.Settings, tc domain.TestCase) (domain.Workspace, error)

	// Prepare resolves the workspace and populates it: the project copy, the
	// component payload and the optional predefined repository.
	// Shared project workspaces that already exist keep their project, the
	// predefined repository of the case is still copied onto their cache.
	Prepare(ctx context.Context, settings domain.Settings, tc domain.TestCase) (domain.Workspace, error)
}

// ModelReader defines the interface for parsing project descriptors.
type ModelReader interface {
	// Read parses the descriptor at path.
	Read(path string) (*domain.ProjectModel, error)
}
