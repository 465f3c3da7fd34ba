package domain

import "path/filepath"

// PlaceholderModule is the marker file name a manifest uses for a package
// that occupies a module slot without shipping a real binary.
const PlaceholderModule = "_._"

// IsPlaceholderModule reports whether a module path denotes the "no real
// module" marker rather than an actual binary.
func IsPlaceholderModule(path string) bool {
	return filepath.Base(path) == PlaceholderModule
}

// PackageNode is one resolved package from a manifest. Nodes are local to a
// single unit's manifest; two units may resolve different versions of a
// nominally same-named package.
type PackageNode struct {
	ID           string
	Version      string
	Dependencies []string
	// Modules are the compile-time binary module paths the package
	// contributes directly, relative to a package store root. Placeholder
	// entries are retained here and filtered during name resolution.
	Modules []string
}

// Manifest is a package manifest restricted to one resolved target.
type Manifest struct {
	// Stores are absolute package-store root directories used to locate
	// module files for identity lookup.
	Stores []string
	// Packages are the resolved packages of the selected target.
	Packages []PackageNode
}
