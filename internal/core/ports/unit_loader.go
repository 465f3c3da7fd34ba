// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/trim/internal/core/domain"

// UnitLoader parses a build-unit descriptor file.
//
//go:generate mockgen -source=unit_loader.go -destination=mocks/mock_unit_loader.go -package=mocks
type UnitLoader interface {
	// Load reads the descriptor at path and returns its declared items.
	// The returned UnitFile carries the canonical absolute path.
	Load(path string) (*domain.UnitFile, error)
}

// UnitFinder enumerates build-unit descriptor files under a root directory.
type UnitFinder interface {
	// FindUnits returns the descriptor files below root whose name ends in
	// ext, sorted lexicographically.
	FindUnits(root, ext string) ([]string, error)
}
