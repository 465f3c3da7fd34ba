package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/trim/internal/adapters/logger"
	"go.trai.ch/trim/internal/core/ports"
)

// NodeID is the unique identifier for the build orchestrator Graft node.
const NodeID graft.ID = "adapter.orchestrator"

func init() {
	graft.Register(graft.Node[ports.Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Orchestrator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewOrchestrator(log), nil
		},
	})
}
