package unitfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/trim/internal/core/ports"
)

// NodeID is the unique identifier for the unit loader Graft node.
const NodeID graft.ID = "adapter.unit_loader"

func init() {
	graft.Register(graft.Node[ports.UnitLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.UnitLoader, error) {
			return NewLoader(), nil
		},
	})
}
