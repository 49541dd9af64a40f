package localstore

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/companion/internal/domain/record"
	"github.com/erp/companion/internal/domain/shared"
)

func newTestSalesOrder(t *testing.T, orderNumber string) *record.SalesOrder {
	t.Helper()

	order, err := record.NewSalesOrder(orderNumber, uuid.New(), "Acme Trading")
	require.NoError(t, err)

	item, err := record.NewSalesOrderItem(uuid.New(), "Widget", "W-001",
		decimal.NewFromInt(2), decimal.NewFromFloat(9.5))
	require.NoError(t, err)
	order.ReplaceItems([]record.SalesOrderItem{*item})

	return order
}

func TestGormSalesOrderRepository_Save(t *testing.T) {
	t.Run("creates order with items", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormSalesOrderRepository(db)

		order := newTestSalesOrder(t, "SO-001")
		require.NoError(t, repo.Save(context.Background(), order))
		assert.NotZero(t, order.LocalID)

		found, err := repo.FindByLocalID(context.Background(), order.LocalID)
		require.NoError(t, err)
		assert.Equal(t, "SO-001", found.OrderNumber)
		assert.Equal(t, record.SyncStatusPending, found.SyncStatus)
		require.Len(t, found.Items, 1)
		assert.Equal(t, "Widget", found.Items[0].ProductName)
		assert.True(t, found.TotalAmount.Equal(decimal.NewFromInt(19)))
	})

	t.Run("update replaces the full item set", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormSalesOrderRepository(db)

		order := newTestSalesOrder(t, "SO-002")
		require.NoError(t, repo.Save(context.Background(), order))

		replacement, err := record.NewSalesOrderItem(uuid.New(), "Gadget", "G-001",
			decimal.NewFromInt(3), decimal.NewFromInt(5))
		require.NoError(t, err)
		order.ReplaceItems([]record.SalesOrderItem{*replacement})
		require.NoError(t, repo.Save(context.Background(), order))

		found, err := repo.FindByLocalID(context.Background(), order.LocalID)
		require.NoError(t, err)
		require.Len(t, found.Items, 1)
		assert.Equal(t, "Gadget", found.Items[0].ProductName)

		var itemCount int64
		require.NoError(t, db.Model(&record.SalesOrderItem{}).Count(&itemCount).Error)
		assert.Equal(t, int64(1), itemCount, "stale item rows must not survive a save")
	})
}

func TestGormSalesOrderRepository_FindByServerID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSalesOrderRepository(db)

	t.Run("returns ErrNotFound for unknown server ID", func(t *testing.T) {
		_, err := repo.FindByServerID(context.Background(), uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("finds order after MarkSynced", func(t *testing.T) {
		order := newTestSalesOrder(t, "SO-003")
		require.NoError(t, repo.Save(context.Background(), order))

		serverID := uuid.New()
		require.NoError(t, repo.MarkSynced(context.Background(), order.LocalID, serverID))

		found, err := repo.FindByServerID(context.Background(), serverID)
		require.NoError(t, err)
		assert.Equal(t, order.LocalID, found.LocalID)
		assert.Equal(t, record.SyncStatusSynced, found.SyncStatus)
		require.NotNil(t, found.ServerID)
		assert.Equal(t, serverID, *found.ServerID)
	})
}

func TestGormSalesOrderRepository_ListPending(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSalesOrderRepository(db)
	ctx := context.Background()

	first := newTestSalesOrder(t, "SO-010")
	second := newTestSalesOrder(t, "SO-011")
	third := newTestSalesOrder(t, "SO-012")
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))
	require.NoError(t, repo.Save(ctx, third))

	require.NoError(t, repo.MarkSynced(ctx, second.LocalID, uuid.New()))

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "SO-010", pending[0].OrderNumber, "pending rows come back oldest first")
	assert.Equal(t, "SO-012", pending[1].OrderNumber)
	require.Len(t, pending[0].Items, 1, "pending rows carry their items for the push payload")

	count, err := repo.CountPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGormSalesOrderRepository_MarkSynced(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSalesOrderRepository(db)

	t.Run("returns ErrNotFound for unknown local ID", func(t *testing.T) {
		err := repo.MarkSynced(context.Background(), 9999, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormSalesOrderRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormSalesOrderRepository(db)
	ctx := context.Background()

	order := newTestSalesOrder(t, "SO-020")
	require.NoError(t, repo.Save(ctx, order))

	require.NoError(t, repo.Delete(ctx, order.LocalID))

	_, err := repo.FindByLocalID(ctx, order.LocalID)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	var itemCount int64
	require.NoError(t, db.Model(&record.SalesOrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, itemCount, "line items are removed with their parent")

	err = repo.Delete(ctx, order.LocalID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
