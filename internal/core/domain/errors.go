package domain

import "go.trai.ch/zerr"

var (
	// ErrNoArtifact is returned when a unit declares no output artifact.
	// Such units have nothing to trim and are skipped, not failed.
	ErrNoArtifact = zerr.New("unit declares no output artifact")

	// ErrArtifactMissing is returned when the artifact is absent on disk and
	// on-demand building is disabled.
	ErrArtifactMissing = zerr.New("artifact missing and on-demand build disabled")

	// ErrRestoreFailed is returned when the orchestrator's restore step fails.
	ErrRestoreFailed = zerr.New("restore failed")

	// ErrCompileFailed is returned when the orchestrator's compile step fails.
	ErrCompileFailed = zerr.New("compile failed")

	// ErrNoCommand is returned when a unit declares no command for a
	// requested orchestrator step.
	ErrNoCommand = zerr.New("unit declares no command for this step")

	// ErrNotBinaryModule is returned when an artifact is not a valid
	// compiled binary module.
	ErrNotBinaryModule = zerr.New("not a binary module")

	// ErrManifestMissing is returned when a unit declares package references
	// but its manifest is absent and cannot be restored.
	ErrManifestMissing = zerr.New("package manifest missing")

	// ErrInvalidManifest is returned when a package manifest cannot be
	// parsed or does not contain the unit's target.
	ErrInvalidManifest = zerr.New("invalid package manifest")

	// ErrUnitCycle is returned when unit references form a cycle.
	ErrUnitCycle = zerr.New("unit reference cycle detected")

	// ErrResolveFailed wraps any unexpected failure during resolution of a
	// single unit. It never aborts sibling units.
	ErrResolveFailed = zerr.New("unit resolution failed")

	// ErrInvalidUnitFile is returned when a unit descriptor cannot be read
	// or parsed.
	ErrInvalidUnitFile = zerr.New("invalid unit descriptor")

	// ErrStoreReadFailed is returned when the inspect store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read inspect store")

	// ErrStoreWriteFailed is returned when the inspect store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write inspect store")

	// ErrUnusedFound signals that analysis completed and produced at least
	// one diagnostic. Callers map it to a distinct exit code.
	ErrUnusedFound = zerr.New("unused dependencies found")
)
