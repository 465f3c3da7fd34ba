// Package cas implements the content-addressed inspect result store.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.InspectStore using a flat JSON file keyed by
// artifact content hash.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache map[string]domain.BinaryInfo
}

// NewStore creates a Store backed by the file at the given path. A missing
// file is an empty store.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:  filepath.Clean(path),
		cache: make(map[string]domain.BinaryInfo),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.With(domain.ErrStoreReadFailed, "cause", err.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.With(zerr.With(domain.ErrStoreReadFailed, "cause", err.Error()), "path", s.path)
	}

	return nil
}

func (s *Store) save() error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.cache, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return zerr.With(domain.ErrStoreWriteFailed, "cause", err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return zerr.With(zerr.With(domain.ErrStoreWriteFailed, "cause", err.Error()), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.With(domain.ErrStoreWriteFailed, "cause", err.Error()), "path", s.path)
	}

	return nil
}

// Get retrieves the stored info for key, or nil on a miss.
func (s *Store) Get(key string) (*domain.BinaryInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info, ok := s.cache[key]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores info under key and persists the store.
func (s *Store) Put(key string, info domain.BinaryInfo) error {
	s.mu.Lock()
	s.cache[key] = info
	s.mu.Unlock()

	return s.save()
}
