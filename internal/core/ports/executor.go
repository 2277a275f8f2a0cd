// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/a-nickol/maven-it-extension/internal/core/domain"
)

// Executor defines the interface for running the build tool.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run starts the invocation, drains both output streams and blocks until
	// the child terminates.
	//
	// A non-zero exit code is reported through the outcome, not as an error.
	// It returns an error only if the process could not be started or its
	// output could not be captured.
	Run(ctx context.Context, inv domain.Invocation) (*domain.ExecutionOutcome, error)
}

// ExecutableLocator defines the interface for finding the build tool.
type ExecutableLocator interface {
	// Locate returns the path of the executable configured in settings and
	// whether it was found.
	Locate(settings domain.Settings) (string, bool)
}
