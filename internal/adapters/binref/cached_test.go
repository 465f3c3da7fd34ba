package binref_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/trim/internal/adapters/binref"
	"go.trai.ch/trim/internal/core/domain"
	"go.trai.ch/trim/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestCached_StoreHitSkipsInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockInspector(ctrl)
	hasher := mocks.NewMockArtifactHasher(ctrl)
	store := mocks.NewMockInspectStore(ctrl)

	stored := domain.BinaryInfo{Identity: "svc.lib", References: []string{"libfoo.native"}}
	hasher.EXPECT().Hash("svc.bin").Return("abc123", nil)
	store.EXPECT().Get("abc123").Return(&stored, nil)

	info, err := binref.NewCached(inner, hasher, store).Inspect("svc.bin")

	require.NoError(t, err)
	assert.Equal(t, stored, info)
}

func TestCached_MissInspectsAndStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockInspector(ctrl)
	hasher := mocks.NewMockArtifactHasher(ctrl)
	store := mocks.NewMockInspectStore(ctrl)

	fresh := domain.BinaryInfo{Identity: "svc.lib"}
	hasher.EXPECT().Hash("svc.bin").Return("abc123", nil)
	store.EXPECT().Get("abc123").Return(nil, nil)
	inner.EXPECT().Inspect("svc.bin").Return(fresh, nil)
	store.EXPECT().Put("abc123", fresh).Return(nil)

	info, err := binref.NewCached(inner, hasher, store).Inspect("svc.bin")

	require.NoError(t, err)
	assert.Equal(t, fresh, info)
}

func TestCached_HashFailureFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockInspector(ctrl)
	hasher := mocks.NewMockArtifactHasher(ctrl)
	store := mocks.NewMockInspectStore(ctrl)

	hasher.EXPECT().Hash("svc.bin").Return("", zerr.New("unreadable"))
	inner.EXPECT().Inspect("svc.bin").Return(domain.BinaryInfo{Identity: "svc.lib"}, nil)

	info, err := binref.NewCached(inner, hasher, store).Inspect("svc.bin")

	require.NoError(t, err)
	assert.Equal(t, "svc.lib", info.Identity)
}

func TestCached_ErrorsAreNotStored(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockInspector(ctrl)
	hasher := mocks.NewMockArtifactHasher(ctrl)
	store := mocks.NewMockInspectStore(ctrl)

	hasher.EXPECT().Hash("junk.bin").Return("abc123", nil)
	store.EXPECT().Get("abc123").Return(nil, nil)
	inner.EXPECT().Inspect("junk.bin").Return(domain.BinaryInfo{}, zerr.With(domain.ErrNotBinaryModule, "path", "junk.bin"))

	_, err := binref.NewCached(inner, hasher, store).Inspect("junk.bin")

	require.ErrorIs(t, err, domain.ErrNotBinaryModule)
}
