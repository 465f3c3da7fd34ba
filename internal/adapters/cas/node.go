package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/trim/internal/core/ports"
)

// NodeID is the unique identifier for the inspect store Graft node.
const NodeID graft.ID = "adapter.inspect_store"

// DefaultStorePath is where inspection results persist between runs.
const DefaultStorePath = ".trim/inspect.json"

func init() {
	graft.Register(graft.Node[ports.InspectStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InspectStore, error) {
			store, err := NewStore(DefaultStorePath)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
