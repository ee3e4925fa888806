package content

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/assetimport/internal/core/ports"
)

// NodeID is the unique identifier for the content repository Graft node.
const NodeID graft.ID = "adapter.content"

func init() {
	graft.Register(graft.Node[ports.ContentRepository]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ContentRepository, error) {
			return NewRepository(), nil
		},
	})
}
