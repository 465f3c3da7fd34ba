// Package binref reads binary reference metadata out of compiled artifacts.
package binref

import (
	"debug/elf"
	"debug/pe"
	"path/filepath"

	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/zerr"
)

// Inspector implements ports.Inspector for ELF and PE artifacts.
//
// ELF: identity is the DT_SONAME entry (executables usually have none, so
// the file name is used) and references are the DT_NEEDED entries. PE:
// identity is the file name and references are the imported DLL names.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect returns the artifact's identity and reference set, or
// domain.ErrNotBinaryModule when the file is neither a valid ELF nor a
// valid PE module.
func (i *Inspector) Inspect(path string) (domain.BinaryInfo, error) {
	if info, err := inspectELF(path); err == nil {
		return info, nil
	}
	if info, err := inspectPE(path); err == nil {
		return info, nil
	}
	return domain.BinaryInfo{}, zerr.With(domain.ErrNotBinaryModule, "path", path)
}

func inspectELF(path string) (domain.BinaryInfo, error) {
	f, err := elf.Open(path)
	if err != nil {
		return domain.BinaryInfo{}, err
	}
	defer f.Close() //nolint:errcheck // read-only handle

	identity := filepath.Base(path)
	// DT_SONAME is the name the dynamic linker records in dependents.
	if sonames, err := f.DynString(elf.DT_SONAME); err == nil && len(sonames) > 0 && sonames[0] != "" {
		identity = sonames[0]
	}

	// Static binaries carry no dynamic section; an empty reference set is
	// a valid answer, not an error.
	references, err := f.ImportedLibraries()
	if err != nil {
		references = nil
	}

	return domain.BinaryInfo{Identity: identity, References: references}, nil
}

func inspectPE(path string) (domain.BinaryInfo, error) {
	f, err := pe.Open(path)
	if err != nil {
		return domain.BinaryInfo{}, err
	}
	defer f.Close() //nolint:errcheck // read-only handle

	references, err := f.ImportedLibraries()
	if err != nil {
		references = nil
	}

	return domain.BinaryInfo{Identity: filepath.Base(path), References: references}, nil
}
