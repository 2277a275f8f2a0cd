package locator

import (
	"context"

	"github.com/a-nickol/maven-it-extension/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the locator Graft node.
const NodeID graft.ID = "adapter.locator"

func init() {
	graft.Register(graft.Node[ports.ExecutableLocator]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ExecutableLocator, error) {
			return NewFinder(), nil
		},
	})
}
