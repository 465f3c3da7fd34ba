// Package domain contains the core domain models for dependency analysis.
package domain

import (
	"path/filepath"
	"strings"
)

// UnitKind classifies the output a build unit produces.
type UnitKind string

const (
	// KindExecutable is a unit whose artifact is a runnable program.
	KindExecutable UnitKind = "executable"
	// KindLibrary is a unit whose artifact is a linkable library.
	KindLibrary UnitKind = "library"
	// KindPlugin is a unit whose artifact is loaded at runtime by a host program.
	KindPlugin UnitKind = "plugin"
	// KindGroup is a unit that aggregates other units and produces no artifact.
	KindGroup UnitKind = "group"
)

// RequiresTransitiveBinaries reports whether the unit's output must
// physically carry forward the binaries its unit references need at runtime.
// Executables and plugins ship with their dependency closure, so their
// reference set is widened with every referenced unit's own references
// before analysis.
func (k UnitKind) RequiresTransitiveBinaries() bool {
	return k == KindExecutable || k == KindPlugin
}

// Valid reports whether k is a known unit kind.
func (k UnitKind) Valid() bool {
	switch k {
	case KindExecutable, KindLibrary, KindPlugin, KindGroup:
		return true
	}
	return false
}

// LibRef is a declared direct binary reference.
// Implicit entries are injected by the toolchain rather than written by the
// unit's author and are excluded from unused-dependency analysis.
type LibRef struct {
	Name     string
	Implicit bool
}

// UnitFile is the parsed form of a build-unit descriptor file, before
// resolution. Path is canonical and absolute.
type UnitFile struct {
	Path     string
	Name     string
	Kind     UnitKind
	Artifact string
	Target   string
	Lockfile string
	Restore  []string
	Compile  []string
	Libs     []LibRef
	Units    []string
	Packages []string
}

// Dir returns the directory containing the descriptor file.
func (u *UnitFile) Dir() string {
	return filepath.Dir(u.Path)
}

// ArtifactPath returns the absolute path of the declared artifact, or ""
// when the unit declares none.
func (u *UnitFile) ArtifactPath() string {
	if u.Artifact == "" {
		return ""
	}
	return filepath.Join(u.Dir(), u.Artifact)
}

// LockfilePath returns the absolute path of the package manifest.
func (u *UnitFile) LockfilePath() string {
	lock := u.Lockfile
	if lock == "" {
		lock = DefaultLockfileName
	}
	return filepath.Join(u.Dir(), lock)
}

// DefaultLockfileName is the manifest file name used when a unit does not
// declare one.
const DefaultLockfileName = "packages.lock.yaml"

// UnitRef pairs a resolved target unit with the include string as written
// in the referencing descriptor.
type UnitRef struct {
	Target  *Unit
	Include string
}

// Unit is a fully resolved build unit. It is built exactly once per
// canonical descriptor path and never mutated after construction, so it may
// be shared freely across consumers.
type Unit struct {
	// Path is the canonical absolute path of the descriptor file.
	Path string
	// Kind is the unit's output classification.
	Kind UnitKind
	// Identity is the binary name reported by the compiled artifact.
	Identity string
	// Refs is the set of binary module names the compiled artifact
	// references. For kinds that require transitively-present binaries it
	// also contains every unit reference's own set.
	Refs *RefSet
	// DirectRefs are the declared direct reference names, implicit entries
	// excluded, in declaration order.
	DirectRefs []string
	// UnitRefs are the resolved unit-to-unit references, in declaration
	// order. Entries whose target could not be resolved are absent.
	UnitRefs []UnitRef
	// PackageRefs are the declared package identifiers, in declaration order.
	PackageRefs []string
	// PackageBinaries maps a lower-cased package identifier to the binary
	// modules transitively reachable through it. Packages that contribute no
	// binaries anywhere in their closure have no entry.
	PackageBinaries map[string]*RefSet
}

// BinariesFor returns the transitive binary set for a declared package
// identifier, or nil when the package contributes none.
func (u *Unit) BinariesFor(pkg string) *RefSet {
	return u.PackageBinaries[strings.ToLower(pkg)]
}

// BinaryInfo is the identity and reference set read from a compiled
// artifact's metadata.
type BinaryInfo struct {
	Identity   string   `json:"identity"`
	References []string `json:"references"`
}
