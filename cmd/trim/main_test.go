package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/trim/internal/app"
	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/trim/internal/core/ports"
	"go.trai.ch/trim/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func mockComponents(t *testing.T) (*app.Components, *mocks.MockUnitFinder, *mocks.MockUnitLoader, *mocks.MockInspector) {
	t.Helper()
	ctrl := gomock.NewController(t)

	finder := mocks.NewMockUnitFinder(ctrl)
	units := mocks.NewMockUnitLoader(ctrl)
	manifests := mocks.NewMockManifestLoader(ctrl)
	inspector := mocks.NewMockInspector(ctrl)
	orch := mocks.NewMockOrchestrator(ctrl)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	vtx := mocks.NewMockVertex(ctrl)
	vtx.EXPECT().Complete(gomock.Any()).AnyTimes()
	vtx.EXPECT().Cached().AnyTimes()
	tel := mocks.NewMockTelemetry(ctrl)
	tel.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vtx
		},
	).AnyTimes()
	tel.EXPECT().Close().Return(nil).AnyTimes()

	application := app.New(finder, units, manifests, inspector, orch, log, tel)
	return &app.Components{App: application, Logger: log}, finder, units, inspector
}

func provide(c *app.Components) componentProvider {
	return func(_ context.Context) (*app.Components, error) {
		return c, nil
	}
}

func TestRun_Version(t *testing.T) {
	components, _, _, _ := mockComponents(t)
	stderr := new(bytes.Buffer)

	code := run(context.Background(), []string{"version"}, stderr, provide(components))

	assert.Equal(t, 0, code)
}

func TestRun_InitializationError(t *testing.T) {
	stderr := new(bytes.Buffer)
	failing := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	code := run(context.Background(), []string{"version"}, stderr, failing)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "init failed")
}

func TestRun_CleanAnalysis(t *testing.T) {
	components, finder, _, _ := mockComponents(t)
	root := t.TempDir()
	finder.EXPECT().FindUnits(root, app.DefaultExtension).Return(nil, nil)

	code := run(context.Background(), []string{"analyze", root}, new(bytes.Buffer), provide(components))

	assert.Equal(t, 0, code)
}

func TestRun_FindingsExitCode(t *testing.T) {
	components, finder, units, inspector := mockComponents(t)
	components.App.WithOutput(new(bytes.Buffer))

	root := t.TempDir()
	dir := filepath.Join(root, "svc")
	require.NoError(t, os.MkdirAll(dir, 0o750))
	artifact := filepath.Join(dir, "svc.bin")
	require.NoError(t, os.WriteFile(artifact, []byte("bin"), 0o600))
	path := filepath.Join(dir, "svc.unit.yaml")

	finder.EXPECT().FindUnits(root, app.DefaultExtension).Return([]string{path}, nil)
	units.EXPECT().Load(path).Return(&domain.UnitFile{
		Path:     path,
		Kind:     domain.KindLibrary,
		Artifact: "svc.bin",
		Libs:     []domain.LibRef{{Name: "libunused.native"}},
	}, nil)
	inspector.EXPECT().Inspect(artifact).Return(domain.BinaryInfo{Identity: "svc.lib"}, nil)

	code := run(context.Background(), []string{"analyze", root}, new(bytes.Buffer), provide(components))

	assert.Equal(t, 2, code)
}

func TestRun_UnknownCommand(t *testing.T) {
	components, _, _, _ := mockComponents(t)

	code := run(context.Background(), []string{"explode"}, new(bytes.Buffer), provide(components))

	assert.Equal(t, 1, code)
}
