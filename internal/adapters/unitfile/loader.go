// Package unitfile provides the YAML build-unit descriptor loader.
package unitfile

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.UnitLoader using YAML descriptor files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// unitDTO mirrors the descriptor file structure.
type unitDTO struct {
	Name     string   `yaml:"name"`
	Kind     string   `yaml:"kind"`
	Artifact string   `yaml:"artifact"`
	Target   string   `yaml:"target"`
	Lockfile string   `yaml:"lockfile"`
	Restore  []string `yaml:"restore"`
	Build    []string `yaml:"build"`
	Libs     []libDTO `yaml:"libs"`
	Units    []string `yaml:"units"`
	Packages []string `yaml:"packages"`
}

// libDTO accepts either a bare string or a mapping with an implicit flag:
//
//	libs:
//	  - libfoo.so
//	  - name: libc.so.6
//	    implicit: true
type libDTO struct {
	Name     string
	Implicit bool
}

func (l *libDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		l.Name = value.Value
		l.Implicit = false
		return nil
	}
	var dto struct {
		Name     string `yaml:"name"`
		Implicit bool   `yaml:"implicit"`
	}
	if err := value.Decode(&dto); err != nil {
		return err
	}
	l.Name = dto.Name
	l.Implicit = dto.Implicit
	return nil
}

// Load reads a descriptor file and returns its declared items.
func (l *Loader) Load(path string) (*domain.UnitFile, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to canonicalize unit path"), "path", path)
	}

	data, err := os.ReadFile(abs) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.With(domain.ErrInvalidUnitFile, "cause", err.Error()), "path", abs)
	}

	var dto unitDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return nil, zerr.With(zerr.With(domain.ErrInvalidUnitFile, "cause", err.Error()), "path", abs)
	}

	kind := domain.UnitKind(dto.Kind)
	if dto.Kind == "" {
		kind = domain.KindLibrary
	}
	if !kind.Valid() {
		return nil, zerr.With(zerr.With(domain.ErrInvalidUnitFile, "kind", dto.Kind), "path", abs)
	}

	name := dto.Name
	if name == "" {
		name = unitName(abs)
	}

	libs := make([]domain.LibRef, 0, len(dto.Libs))
	for _, lib := range dto.Libs {
		if lib.Name == "" {
			return nil, zerr.With(zerr.With(domain.ErrInvalidUnitFile, "cause", "lib entry with empty name"), "path", abs)
		}
		libs = append(libs, domain.LibRef{Name: lib.Name, Implicit: lib.Implicit})
	}

	return &domain.UnitFile{
		Path:     filepath.Clean(abs),
		Name:     name,
		Kind:     kind,
		Artifact: filepath.FromSlash(dto.Artifact),
		Target:   dto.Target,
		Lockfile: filepath.FromSlash(dto.Lockfile),
		Restore:  dto.Restore,
		Compile:  dto.Build,
		Libs:     libs,
		Units:    dto.Units,
		Packages: dto.Packages,
	}, nil
}

// unitName derives a unit name from the descriptor file name, stripping the
// multi-part extension ("img.unit.yaml" -> "img").
func unitName(path string) string {
	base := filepath.Base(path)
	if idx := strings.Index(base, "."); idx > 0 {
		return base[:idx]
	}
	return base
}
