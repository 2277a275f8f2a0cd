package pom

import (
	"context"

	"github.com/a-nickol/maven-it-extension/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the descriptor reader Graft node.
const NodeID graft.ID = "adapter.pom"

func init() {
	graft.Register(graft.Node[ports.ModelReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModelReader, error) {
			return NewReader(), nil
		},
	})
}
