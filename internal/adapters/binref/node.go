package binref

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/trim/internal/adapters/cas"
	"go.trai.ch/trim/internal/adapters/fs"
	"go.trai.ch/trim/internal/core/ports"
)

// NodeID is the unique identifier for the inspector Graft node.
const NodeID graft.ID = "adapter.inspector"

func init() {
	graft.Register(graft.Node[ports.Inspector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID, cas.NodeID},
		Run: func(ctx context.Context) (ports.Inspector, error) {
			hasher, err := graft.Dep[ports.ArtifactHasher](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.InspectStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewCached(NewInspector(), hasher, store), nil
		},
	})
}
