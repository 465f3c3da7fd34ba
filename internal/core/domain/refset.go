package domain

import (
	"sort"
	"strings"
)

// RefSet is a set of binary module names with case-insensitive membership.
// Reference names in compiled metadata do not agree on casing across
// toolchains, so all lookups fold case; the original spelling of the first
// insertion is preserved for display.
type RefSet struct {
	names map[string]string
}

// NewRefSet creates a RefSet containing the given names.
func NewRefSet(names ...string) *RefSet {
	s := &RefSet{names: make(map[string]string, len(names))}
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts a name into the set. Empty names are ignored.
func (s *RefSet) Add(name string) {
	if name == "" {
		return
	}
	key := strings.ToLower(name)
	if _, ok := s.names[key]; !ok {
		s.names[key] = name
	}
}

// Union adds every name of other into s.
func (s *RefSet) Union(other *RefSet) {
	if other == nil {
		return
	}
	for key, name := range other.names {
		if _, ok := s.names[key]; !ok {
			s.names[key] = name
		}
	}
}

// Contains reports whether name is in the set, ignoring case.
func (s *RefSet) Contains(name string) bool {
	if s == nil {
		return false
	}
	_, ok := s.names[strings.ToLower(name)]
	return ok
}

// ContainsAny reports whether at least one name of other is in s.
func (s *RefSet) ContainsAny(other *RefSet) bool {
	if s == nil || other == nil {
		return false
	}
	for key := range other.names {
		if _, ok := s.names[key]; ok {
			return true
		}
	}
	return false
}

// Len returns the number of names in the set.
func (s *RefSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Names returns the original spellings, sorted case-insensitively.
func (s *RefSet) Names() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}

// Clone returns an independent copy of the set.
func (s *RefSet) Clone() *RefSet {
	c := &RefSet{names: make(map[string]string, s.Len())}
	if s != nil {
		for key, name := range s.names {
			c.names[key] = name
		}
	}
	return c
}
