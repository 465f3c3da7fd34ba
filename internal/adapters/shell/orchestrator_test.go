package shell_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/trim/internal/adapters/shell"
	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/trim/internal/core/ports"
	"go.trai.ch/trim/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func unitIn(dir string) *domain.UnitFile {
	return &domain.UnitFile{Path: filepath.Join(dir, "svc.unit.yaml")}
}

func TestOrchestrator_RestoreRunsInUnitDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	dir := t.TempDir()
	unit := unitIn(dir)
	unit.Restore = []string{"sh", "-c", "echo restored > marker"}

	err := shell.NewOrchestrator(mockLogger).Restore(context.Background(), unit)

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "marker"))
}

func TestOrchestrator_CompileFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	unit := unitIn(t.TempDir())
	unit.Compile = []string{"sh", "-c", "echo broken >&2; exit 3"}

	err := shell.NewOrchestrator(mockLogger).Compile(context.Background(), unit)

	require.ErrorIs(t, err, domain.ErrCompileFailed)
}

func TestOrchestrator_MissingCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	unit := unitIn(t.TempDir())

	err := shell.NewOrchestrator(mockLogger).Restore(context.Background(), unit)
	require.ErrorIs(t, err, domain.ErrRestoreFailed)

	err = shell.NewOrchestrator(mockLogger).Compile(context.Background(), unit)
	require.ErrorIs(t, err, domain.ErrCompileFailed)
}

func TestOrchestrator_LogsCommandOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("line1").Times(1)
	mockLogger.EXPECT().Info("line2").Times(1)

	unit := unitIn(t.TempDir())
	unit.Restore = []string{"sh", "-c", "echo line1; echo line2"}

	err := shell.NewOrchestrator(mockLogger).Restore(context.Background(), unit)
	require.NoError(t, err)
}

func TestOrchestrator_OutputGoesToVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	out, err := os.CreateTemp(t.TempDir(), "vertex-out")
	require.NoError(t, err)
	defer out.Close()

	vtx := mocks.NewMockVertex(ctrl)
	vtx.EXPECT().Stdout().Return(out)
	vtx.EXPECT().Stderr().Return(out)
	ctx := ports.ContextWithVertex(context.Background(), vtx)

	unit := unitIn(t.TempDir())
	unit.Restore = []string{"sh", "-c", "echo captured"}

	require.NoError(t, shell.NewOrchestrator(mockLogger).Restore(ctx, unit))

	data, err := os.ReadFile(out.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "captured")
}
