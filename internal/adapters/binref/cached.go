package binref

import (
	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/trim/internal/core/ports"
)

// Cached decorates an Inspector with a content-addressed result store, so
// an artifact that did not change between runs is parsed only once.
// Failures are not cached; a junk file may be replaced by a real artifact
// with the same path before the next run.
type Cached struct {
	inner  ports.Inspector
	hasher ports.ArtifactHasher
	store  ports.InspectStore
}

// NewCached creates a caching Inspector around inner.
func NewCached(inner ports.Inspector, hasher ports.ArtifactHasher, store ports.InspectStore) *Cached {
	return &Cached{inner: inner, hasher: hasher, store: store}
}

// Inspect returns the stored result for the artifact's content hash, or
// falls through to the inner inspector and stores its answer. When hashing
// or the store fails the inner inspector still runs; the cache is an
// optimization, never a gate.
func (c *Cached) Inspect(path string) (domain.BinaryInfo, error) {
	key, err := c.hasher.Hash(path)
	if err != nil {
		return c.inner.Inspect(path)
	}

	if hit, err := c.store.Get(key); err == nil && hit != nil {
		return *hit, nil
	}

	info, err := c.inner.Inspect(path)
	if err != nil {
		return domain.BinaryInfo{}, err
	}
	_ = c.store.Put(key, info) // best effort
	return info, nil
}
