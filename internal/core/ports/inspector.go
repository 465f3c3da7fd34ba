package ports

import "go.trai.ch/trim/internal/core/domain"

// Inspector reads the identity and reference set out of a compiled
// artifact's metadata. Implementations must be deterministic functions of
// the artifact's bytes.
//
//go:generate mockgen -source=inspector.go -destination=mocks/mock_inspector.go -package=mocks
type Inspector interface {
	// Inspect returns the artifact's declared identity and the binary
	// module names it references. Returns domain.ErrNotBinaryModule when
	// the file is not a valid compiled module.
	Inspect(path string) (domain.BinaryInfo, error)
}

// ArtifactHasher computes a content hash for an artifact file, used to key
// cached inspection results.
type ArtifactHasher interface {
	// Hash returns a stable hex digest of the file's content.
	Hash(path string) (string, error)
}

// InspectStore persists inspection results across runs.
type InspectStore interface {
	// Get returns the stored info for key, or nil on a miss.
	Get(key string) (*domain.BinaryInfo, error)
	// Put stores info under key.
	Put(key string, info domain.BinaryInfo) error
}
