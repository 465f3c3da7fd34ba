package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/trim/internal/core/domain"
)

func TestUnitKind_RequiresTransitiveBinaries(t *testing.T) {
	assert.True(t, domain.KindExecutable.RequiresTransitiveBinaries())
	assert.True(t, domain.KindPlugin.RequiresTransitiveBinaries())
	assert.False(t, domain.KindLibrary.RequiresTransitiveBinaries())
	assert.False(t, domain.KindGroup.RequiresTransitiveBinaries())
}

func TestUnitKind_Valid(t *testing.T) {
	assert.True(t, domain.KindLibrary.Valid())
	assert.False(t, domain.UnitKind("webapp").Valid())
}

func TestUnitFile_Paths(t *testing.T) {
	dir := filepath.Join(string(filepath.Separator), "work", "svc")
	file := &domain.UnitFile{
		Path:     filepath.Join(dir, "svc.unit.yaml"),
		Artifact: filepath.Join("out", "svc.bin"),
	}

	assert.Equal(t, dir, file.Dir())
	assert.Equal(t, filepath.Join(dir, "out", "svc.bin"), file.ArtifactPath())
	assert.Equal(t, filepath.Join(dir, domain.DefaultLockfileName), file.LockfilePath())

	file.Lockfile = "custom.lock.yaml"
	assert.Equal(t, filepath.Join(dir, "custom.lock.yaml"), file.LockfilePath())

	file.Artifact = ""
	assert.Equal(t, "", file.ArtifactPath())
}

func TestUnit_BinariesFor(t *testing.T) {
	unit := &domain.Unit{
		PackageBinaries: map[string]*domain.RefSet{
			"acme.codec": domain.NewRefSet("codec.native"),
		},
	}

	assert.True(t, unit.BinariesFor("Acme.Codec").Contains("codec.native"))
	assert.Nil(t, unit.BinariesFor("acme.tooling"))
}

func TestIsPlaceholderModule(t *testing.T) {
	assert.True(t, domain.IsPlaceholderModule("_._"))
	assert.True(t, domain.IsPlaceholderModule(filepath.Join("lib", "net", "_._")))
	assert.False(t, domain.IsPlaceholderModule("libfoo.native"))
}
