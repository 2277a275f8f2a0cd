package ports

import "github.com/a-nickol/maven-it-extension/internal/core/domain"

// ResultPublisher defines the interface for publishing execution results.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ResultPublisher interface {
	// Publish stores the result under its test context key.
	Publish(result *domain.PublishedResult, ws domain.Workspace) error
}

// ResultStore defines the interface for retrieving published results.
type ResultStore interface {
	// ExecutionResult returns the result published for key.
	ExecutionResult(key string) (*domain.PublishedResult, error)
	// Log returns the log files published for key.
	Log(key string) (domain.LogFiles, error)
	// Cache returns the cache published for key.
	Cache(key string) (domain.CacheResult, error)
	// Project returns the project published for key.
	Project(key string) (domain.ProjectResult, error)
}

// ResultArchive defines the interface for reading results persisted by earlier runs.
type ResultArchive interface {
	// List returns every archived result below baseDir.
	List(baseDir string) ([]*domain.PublishedResult, error)
}
