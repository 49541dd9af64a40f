package localstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/companion/internal/domain/record"
	"github.com/erp/companion/internal/domain/shared"
)

func TestGormSettingsRepository_GetSet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSettingsRepository(db)
	ctx := context.Background()

	t.Run("missing key returns ErrNotFound", func(t *testing.T) {
		_, err := repo.Get(ctx, record.SettingKeyAPIURL)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, record.SettingKeyAPIURL, "https://erp.example.com/api/v1"))

		value, err := repo.Get(ctx, record.SettingKeyAPIURL)
		require.NoError(t, err)
		assert.Equal(t, "https://erp.example.com/api/v1", value)
	})

	t.Run("set overwrites the previous value", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, record.SettingKeyAPIURL, "https://other.example.com"))

		value, err := repo.Get(ctx, record.SettingKeyAPIURL)
		require.NoError(t, err)
		assert.Equal(t, "https://other.example.com", value)
	})
}

func TestGormSettingsRepository_Snapshot(t *testing.T) {
	t.Run("empty table yields defaults", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormSettingsRepository(db)

		snapshot, err := repo.Snapshot(context.Background())
		require.NoError(t, err)
		assert.Empty(t, snapshot.APIURL)
		assert.True(t, snapshot.SyncEnabled, "sync defaults to enabled")
		assert.False(t, snapshot.WifiOnlySync)
		assert.Nil(t, snapshot.LastSync)
	})

	t.Run("stored values are reflected", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormSettingsRepository(db)
		ctx := context.Background()

		require.NoError(t, repo.Set(ctx, record.SettingKeyAPIURL, "http://127.0.0.1:9000"))
		require.NoError(t, repo.Set(ctx, record.SettingKeySyncEnabled, "false"))
		require.NoError(t, repo.Set(ctx, record.SettingKeyWifiOnlySync, "true"))

		lastSync := time.Date(2024, 5, 20, 9, 30, 0, 0, time.UTC)
		require.NoError(t, repo.SetLastSync(ctx, lastSync))

		snapshot, err := repo.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, "http://127.0.0.1:9000", snapshot.APIURL)
		assert.False(t, snapshot.SyncEnabled)
		assert.True(t, snapshot.WifiOnlySync)
		require.NotNil(t, snapshot.LastSync)
		assert.True(t, snapshot.LastSync.Equal(lastSync))
	})
}
