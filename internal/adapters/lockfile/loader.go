// Package lockfile provides the YAML package manifest loader.
package lockfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ManifestLoader for lock-style YAML manifests
// written by the restore step.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

type manifestDTO struct {
	Version int                  `yaml:"version"`
	Stores  []string             `yaml:"stores"`
	Targets map[string]targetDTO `yaml:"targets"`
}

type targetDTO struct {
	Packages []packageDTO `yaml:"packages"`
}

type packageDTO struct {
	ID           string   `yaml:"id"`
	Version      string   `yaml:"version"`
	Dependencies []string `yaml:"dependencies"`
	Modules      []string `yaml:"modules"`
}

// Load reads the manifest at path and returns the packages resolved for
// target. Store roots are returned as absolute paths anchored at the
// manifest's directory.
func (l *Loader) Load(path, target string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the unit descriptor
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrManifestMissing, "path", path)
		}
		return nil, zerr.With(zerr.With(domain.ErrInvalidManifest, "cause", err.Error()), "path", path)
	}

	var dto manifestDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(zerr.With(domain.ErrInvalidManifest, "cause", err.Error()), "path", path)
	}

	selected, ok := dto.Targets[target]
	if !ok {
		return nil, zerr.With(zerr.With(domain.ErrInvalidManifest, "target", target), "path", path)
	}

	dir := filepath.Dir(path)
	stores := make([]string, 0, len(dto.Stores))
	for _, store := range dto.Stores {
		store = filepath.FromSlash(store)
		if !filepath.IsAbs(store) {
			store = filepath.Join(dir, store)
		}
		stores = append(stores, store)
	}

	packages := make([]domain.PackageNode, 0, len(selected.Packages))
	for _, pkg := range selected.Packages {
		if pkg.ID == "" {
			return nil, zerr.With(zerr.With(domain.ErrInvalidManifest, "cause", "package with empty id"), "path", path)
		}
		packages = append(packages, domain.PackageNode{
			ID:           pkg.ID,
			Version:      pkg.Version,
			Dependencies: pkg.Dependencies,
			Modules:      pkg.Modules,
		})
	}

	return &domain.Manifest{Stores: stores, Packages: packages}, nil
}
