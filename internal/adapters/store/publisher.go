package store

import (
	"github.com/a-nickol/maven-it-extension/internal/core/domain"
	"github.com/a-nickol/maven-it-extension/internal/core/ports"
	"github.com/oklog/ulid/v2"
)

var _ ports.ResultPublisher = (*Publisher)(nil)

// Publisher makes results retrievable in process through the Registry and
// after the process ends through the Archive.
type Publisher struct {
	registry *Registry
	archive  *Archive
}

// NewPublisher creates a new Publisher.
func NewPublisher(registry *Registry, archive *Archive) *Publisher {
	return &Publisher{registry: registry, archive: archive}
}

// Publish assigns a run id and the test context key when missing, then stores result.
func (p *Publisher) Publish(result *domain.PublishedResult, ws domain.Workspace) error {
	if result.RunID == "" {
		result.RunID = NewRunID()
	}
	if result.Key == "" {
		result.Key = result.Identity.Key()
	}

	p.registry.Publish(result.Key, result)
	return p.archive.Write(result, ws)
}

// NewRunID returns a new lexically sortable run identifier.
func NewRunID() string {
	return ulid.Make().String()
}
