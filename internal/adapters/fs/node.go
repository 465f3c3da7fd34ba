package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/trim/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the unit finder Graft node.
	WalkerNodeID graft.ID = "adapter.unit_finder"
	// HasherNodeID is the unique identifier for the artifact hasher Graft node.
	HasherNodeID graft.ID = "adapter.artifact_hasher"
)

func init() {
	graft.Register(graft.Node[ports.UnitFinder]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.UnitFinder, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactHasher, error) {
			return NewHasher(), nil
		},
	})
}
