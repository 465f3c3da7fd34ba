package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/trim/internal/core/domain"
)

func TestRefSet_CaseInsensitive(t *testing.T) {
	s := domain.NewRefSet("LibFoo.Native")

	assert.True(t, s.Contains("libfoo.native"))
	assert.True(t, s.Contains("LIBFOO.NATIVE"))
	assert.False(t, s.Contains("libbar"))
}

func TestRefSet_PreservesFirstSpelling(t *testing.T) {
	s := domain.NewRefSet()
	s.Add("LibFoo")
	s.Add("libfoo")
	s.Add("libBar")

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"libBar", "LibFoo"}, s.Names())
}

func TestRefSet_IgnoresEmpty(t *testing.T) {
	s := domain.NewRefSet("")
	assert.Equal(t, 0, s.Len())
}

func TestRefSet_Union(t *testing.T) {
	a := domain.NewRefSet("one", "two")
	b := domain.NewRefSet("TWO", "three")

	a.Union(b)

	assert.Equal(t, 3, a.Len())
	assert.True(t, a.Contains("three"))

	// Union with nil is a no-op.
	a.Union(nil)
	assert.Equal(t, 3, a.Len())
}

func TestRefSet_ContainsAny(t *testing.T) {
	s := domain.NewRefSet("alpha", "beta")

	assert.True(t, s.ContainsAny(domain.NewRefSet("gamma", "BETA")))
	assert.False(t, s.ContainsAny(domain.NewRefSet("gamma", "delta")))
	assert.False(t, s.ContainsAny(nil))
}

func TestRefSet_NilReceiver(t *testing.T) {
	var s *domain.RefSet

	assert.False(t, s.Contains("anything"))
	assert.Equal(t, 0, s.Len())
	assert.Nil(t, s.Names())
}

func TestRefSet_Clone(t *testing.T) {
	s := domain.NewRefSet("one")
	c := s.Clone()
	c.Add("two")

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, c.Len())
}
