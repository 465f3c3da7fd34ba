package ports

import (
	"context"

	"go.trai.ch/trim/internal/core/domain"
)

// Orchestrator drives the external build process for a unit. Both steps
// block until the underlying process exits; a restore or compile may take
// minutes.
//
//go:generate mockgen -source=orchestrator.go -destination=mocks/mock_orchestrator.go -package=mocks
type Orchestrator interface {
	// Restore fetches the unit's external packages and writes its manifest.
	Restore(ctx context.Context, unit *domain.UnitFile) error
	// Compile produces the unit's declared artifact.
	Compile(ctx context.Context, unit *domain.UnitFile) error
}
