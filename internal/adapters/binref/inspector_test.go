package binref_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/trim/internal/adapters/binref"
	"go.trai.ch/trim/internal/core/domain"
)

func TestInspector_RejectsNonBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("just text"), 0o600))

	_, err := binref.NewInspector().Inspect(path)

	require.ErrorIs(t, err, domain.ErrNotBinaryModule)
}

func TestInspector_RejectsMissingFile(t *testing.T) {
	_, err := binref.NewInspector().Inspect(filepath.Join(t.TempDir(), "absent.bin"))

	require.ErrorIs(t, err, domain.ErrNotBinaryModule)
}

func TestInspector_ReadsOwnExecutable(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "windows" {
		t.Skipf("no ELF/PE reader for %s test binaries", runtime.GOOS)
	}

	exe, err := os.Executable()
	require.NoError(t, err)

	info, err := binref.NewInspector().Inspect(exe)

	require.NoError(t, err)
	assert.NotEmpty(t, info.Identity)
}
