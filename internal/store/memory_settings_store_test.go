package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shelfline/locale-service/internal/model"
)

func TestMemorySettingsStore_LoadMissing(t *testing.T) {
	s := NewMemorySettingsStore(zap.NewNop())

	_, err := s.Load(context.Background(), "tenant-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemorySettingsStore_SaveAndLoad(t *testing.T) {
	s := NewMemorySettingsStore(zap.NewNop())
	ctx := context.Background()

	settings := model.DefaultSettings("tenant-1")
	require.NoError(t, s.Save(ctx, settings))

	got, err := s.Load(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, settings, got)
	assert.Equal(t, 1, s.Size())

	// The store holds its own copy on both sides.
	got.Currency = "USD"
	again, err := s.Load(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, "MYR", again.Currency)
}

func TestMemorySettingsStore_SaveReplaces(t *testing.T) {
	s := NewMemorySettingsStore(zap.NewNop())
	ctx := context.Background()

	first := model.DefaultSettings("tenant-1")
	require.NoError(t, s.Save(ctx, first))

	second := first.Clone()
	second.Country = "US"
	second.Currency = "USD"
	second.Version = 2
	require.NoError(t, s.Save(ctx, second))

	got, err := s.Load(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, "US", got.Country)
	assert.Equal(t, int64(2), got.Version)
	assert.Equal(t, 1, s.Size())
}

func TestMemorySettingsStore_RecordsSurviveServiceRebuild(t *testing.T) {
	s := NewMemorySettingsStore(zap.NewNop())
	ctx := context.Background()

	settings := model.DefaultSettings("tenant-1")
	settings.Country = "JP"
	settings.Currency = "JPY"
	settings.Timezone = "Asia/Tokyo"
	require.NoError(t, s.Save(ctx, settings))

	// A consumer built later against the same store sees the saved record,
	// mirroring a page reload against durable storage.
	got, err := s.Load(ctx, "tenant-1")
	require.NoError(t, err)
	assert.Equal(t, "JPY", got.Currency)
}

func TestMemorySettingsStore_Ping(t *testing.T) {
	s := NewMemorySettingsStore(zap.NewNop())
	assert.NoError(t, s.Ping(context.Background()))
}
