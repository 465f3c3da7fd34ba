package ports

import "go.trai.ch/trim/internal/core/domain"

// ManifestLoader parses a package manifest and selects one resolved target.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest at path and returns the packages resolved for
	// target. Returns domain.ErrManifestMissing when the file does not
	// exist and domain.ErrInvalidManifest when it cannot be parsed or does
	// not contain target.
	Load(path, target string) (*domain.Manifest, error)
}
