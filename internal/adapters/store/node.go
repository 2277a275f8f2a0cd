package store

import (
	"context"

	"github.com/a-nickol/maven-it-extension/internal/core/ports"
	"github.com/grindlemire/graft"
)

const (
	// RegistryNodeID is the unique identifier for the result registry Graft node.
	RegistryNodeID graft.ID = "adapter.store.registry"
	// ArchiveNodeID is the unique identifier for the result archive Graft node.
	ArchiveNodeID graft.ID = "adapter.store.archive"
	// PublisherNodeID is the unique identifier for the result publisher Graft node.
	PublisherNodeID graft.ID = "adapter.store.publisher"
)

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Registry, error) {
			return NewRegistry(), nil
		},
	})

	graft.Register(graft.Node[*Archive]{
		ID:        ArchiveNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Archive, error) {
			return NewArchive(), nil
		},
	})

	graft.Register(graft.Node[ports.ResultPublisher]{
		ID:        PublisherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RegistryNodeID, ArchiveNodeID},
		Run: func(ctx context.Context) (ports.ResultPublisher, error) {
			registry, err := graft.Dep[*Registry](ctx)
			if err != nil {
				return nil, err
			}
			archive, err := graft.Dep[*Archive](ctx)
			if err != nil {
				return nil, err
			}
			return NewPublisher(registry, archive), nil
		},
	})
}
