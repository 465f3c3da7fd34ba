package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/trim/internal/adapters/binref"
	"go.trai.ch/trim/internal/adapters/fs"
	"go.trai.ch/trim/internal/adapters/lockfile"
	"go.trai.ch/trim/internal/adapters/logger"
	"go.trai.ch/trim/internal/adapters/shell"
	"go.trai.ch/trim/internal/adapters/telemetry"
	"go.trai.ch/trim/internal/adapters/unitfile"
	"go.trai.ch/trim/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles the application with the adapters the entry point
// needs direct access to.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.WalkerNodeID,
			unitfile.NodeID,
			lockfile.NodeID,
			binref.NodeID,
			shell.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	finder, err := graft.Dep[ports.UnitFinder](ctx)
	if err != nil {
		return nil, err
	}

	units, err := graft.Dep[ports.UnitLoader](ctx)
	if err != nil {
		return nil, err
	}

	manifests, err := graft.Dep[ports.ManifestLoader](ctx)
	if err != nil {
		return nil, err
	}

	inspector, err := graft.Dep[ports.Inspector](ctx)
	if err != nil {
		return nil, err
	}

	orchestrator, err := graft.Dep[ports.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(finder, units, manifests, inspector, orchestrator, log, tel), nil
}
