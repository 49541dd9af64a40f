package localstore

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/companion/internal/domain/record"
)

func TestGormCustomerRepository_InsertIfAbsent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()

	serverID := uuid.New()
	customer := &record.Customer{
		SyncMeta: record.NewSyncedMeta(serverID),
		Code:     "CUST-001",
		Name:     "Acme Trading",
		Phone:    "13800138000",
	}

	t.Run("first insert succeeds", func(t *testing.T) {
		inserted, err := repo.InsertIfAbsent(ctx, customer)
		require.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("same server ID is a no-op that keeps the local row", func(t *testing.T) {
		duplicate := &record.Customer{
			SyncMeta: record.NewSyncedMeta(serverID),
			Code:     "CUST-001",
			Name:     "Renamed Remotely",
		}

		inserted, err := repo.InsertIfAbsent(ctx, duplicate)
		require.NoError(t, err)
		assert.False(t, inserted)

		found, err := repo.FindByServerID(ctx, serverID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Trading", found.Name, "existing row wins over the pulled copy")
	})

	t.Run("missing server ID is rejected", func(t *testing.T) {
		_, err := repo.InsertIfAbsent(ctx, &record.Customer{Name: "No ID"})
		assert.Error(t, err)
	})
}

func TestGormStockItemRepository_InsertIfAbsent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStockItemRepository(db)
	ctx := context.Background()

	serverID := uuid.New()
	item := &record.StockItem{
		SyncMeta:       record.NewSyncedMeta(serverID),
		Code:           "SKU-001",
		Name:           "Widget",
		Unit:           "pcs",
		SalesPrice:     decimal.NewFromFloat(9.5),
		QuantityOnHand: decimal.NewFromInt(120),
	}

	inserted, err := repo.InsertIfAbsent(ctx, item)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.InsertIfAbsent(ctx, &record.StockItem{
		SyncMeta: record.NewSyncedMeta(serverID),
		Name:     "Widget v2",
	})
	require.NoError(t, err)
	assert.False(t, inserted)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].Name)
}

func TestGormCustomerRepository_ListOrdering(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormCustomerRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Zenith Corp", "Acme Trading", "Mid Supplies"} {
		_, err := repo.InsertIfAbsent(ctx, &record.Customer{
			SyncMeta: record.NewSyncedMeta(uuid.New()),
			Name:     name,
		})
		require.NoError(t, err)
	}

	customers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, "Acme Trading", customers[0].Name)
	assert.Equal(t, "Zenith Corp", customers[2].Name)
}
