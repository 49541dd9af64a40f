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

func newTestWorkOrder(t *testing.T, number string) *record.WorkOrder {
	t.Helper()

	workOrder, err := record.NewWorkOrder(number, uuid.New(), "Acme Trading")
	require.NoError(t, err)

	item, err := record.NewWorkOrderItem("On-site installation",
		decimal.NewFromInt(2), decimal.NewFromInt(80))
	require.NoError(t, err)
	workOrder.ReplaceItems([]record.WorkOrderItem{*item})

	return workOrder
}

func TestGormWorkOrderRepository_SaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormWorkOrderRepository(db)
	ctx := context.Background()

	workOrder := newTestWorkOrder(t, "WO-001")
	workOrder.SetDescription("Install new POS terminal")
	require.NoError(t, repo.Save(ctx, workOrder))
	require.NotZero(t, workOrder.LocalID)

	found, err := repo.FindByLocalID(ctx, workOrder.LocalID)
	require.NoError(t, err)
	assert.Equal(t, "WO-001", found.WorkOrderNumber)
	assert.Equal(t, "Install new POS terminal", found.Description)
	require.Len(t, found.Items, 1)
	assert.True(t, found.TotalAmount.Equal(decimal.NewFromInt(160)))
}

func TestGormWorkOrderRepository_UpdateReplacesItems(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormWorkOrderRepository(db)
	ctx := context.Background()

	workOrder := newTestWorkOrder(t, "WO-002")
	require.NoError(t, repo.Save(ctx, workOrder))

	first, err := record.NewWorkOrderItem("Diagnostics", decimal.NewFromInt(1), decimal.NewFromInt(50))
	require.NoError(t, err)
	second, err := record.NewWorkOrderItem("Repair", decimal.NewFromInt(3), decimal.NewFromInt(40))
	require.NoError(t, err)
	workOrder.ReplaceItems([]record.WorkOrderItem{*first, *second})
	require.NoError(t, repo.Save(ctx, workOrder))

	found, err := repo.FindByLocalID(ctx, workOrder.LocalID)
	require.NoError(t, err)
	require.Len(t, found.Items, 2)

	var itemCount int64
	require.NoError(t, db.Model(&record.WorkOrderItem{}).Count(&itemCount).Error)
	assert.Equal(t, int64(2), itemCount)
}

func TestGormWorkOrderRepository_MarkSynced(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormWorkOrderRepository(db)
	ctx := context.Background()

	workOrder := newTestWorkOrder(t, "WO-003")
	require.NoError(t, repo.Save(ctx, workOrder))

	serverID := uuid.New()
	require.NoError(t, repo.MarkSynced(ctx, workOrder.LocalID, serverID))

	found, err := repo.FindByServerID(ctx, serverID)
	require.NoError(t, err)
	assert.Equal(t, record.SyncStatusSynced, found.SyncStatus)

	count, err := repo.CountPending(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	err = repo.MarkSynced(ctx, 9999, uuid.New())
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
