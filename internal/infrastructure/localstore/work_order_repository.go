package localstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/erp/companion/internal/domain/record"
	"github.com/erp/companion/internal/domain/shared"
)

// GormWorkOrderRepository implements record.WorkOrderRepository using
// GORM over the embedded sqlite cache
type GormWorkOrderRepository struct {
	db *gorm.DB
}

// NewGormWorkOrderRepository creates a new GormWorkOrderRepository
func NewGormWorkOrderRepository(db *gorm.DB) *GormWorkOrderRepository {
	return &GormWorkOrderRepository{db: db}
}

// Save persists the work order and its full line item set in one
// transaction, replacing any previously stored items
func (r *GormWorkOrderRepository) Save(ctx context.Context, workOrder *record.WorkOrder) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if workOrder.LocalID == 0 {
			return tx.Create(workOrder).Error
		}

		if err := tx.Omit("Items").Save(workOrder).Error; err != nil {
			return err
		}
		if err := tx.Where("work_order_local_id = ?", workOrder.LocalID).
			Delete(&record.WorkOrderItem{}).Error; err != nil {
			return err
		}
		for i := range workOrder.Items {
			workOrder.Items[i].LocalID = 0
			workOrder.Items[i].WorkOrderLocalID = workOrder.LocalID
		}
		if len(workOrder.Items) > 0 {
			if err := tx.Create(&workOrder.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return wrapErr(err)
}

// FindByLocalID finds a work order by its local identifier
func (r *GormWorkOrderRepository) FindByLocalID(ctx context.Context, localID uint) (*record.WorkOrder, error) {
	var workOrder record.WorkOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&workOrder, "local_id = ?", localID).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &workOrder, nil
}

// FindByServerID finds a work order by its server-assigned identifier
func (r *GormWorkOrderRepository) FindByServerID(ctx context.Context, serverID uuid.UUID) (*record.WorkOrder, error) {
	var workOrder record.WorkOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&workOrder, "server_id = ?", serverID).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &workOrder, nil
}

// List returns all cached work orders, newest first
func (r *GormWorkOrderRepository) List(ctx context.Context) ([]record.WorkOrder, error) {
	var workOrders []record.WorkOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&workOrders).Error; err != nil {
		return nil, wrapErr(err)
	}
	return workOrders, nil
}

// ListPending returns work orders awaiting push, oldest first
func (r *GormWorkOrderRepository) ListPending(ctx context.Context) ([]record.WorkOrder, error) {
	var workOrders []record.WorkOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("sync_status = ?", record.SyncStatusPending).
		Order("local_id ASC").
		Find(&workOrders).Error; err != nil {
		return nil, wrapErr(err)
	}
	return workOrders, nil
}

// CountPending counts work orders awaiting push
func (r *GormWorkOrderRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&record.WorkOrder{}).
		Where("sync_status = ?", record.SyncStatusPending).
		Count(&count).Error; err != nil {
		return 0, wrapErr(err)
	}
	return count, nil
}

// MarkSynced rewrites the row with its server identifier and SYNCED
// status after a successful push
func (r *GormWorkOrderRepository) MarkSynced(ctx context.Context, localID uint, serverID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&record.WorkOrder{}).
		Where("local_id = ?", localID).
		Updates(map[string]interface{}{
			"server_id":   serverID,
			"sync_status": record.SyncStatusSynced,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return wrapErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a work order and its line items
func (r *GormWorkOrderRepository) Delete(ctx context.Context, localID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("work_order_local_id = ?", localID).
			Delete(&record.WorkOrderItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&record.WorkOrder{}, "local_id = ?", localID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
	if err != nil {
		return wrapErr(err)
	}
	return nil
}

// Ensure GormWorkOrderRepository implements record.WorkOrderRepository
var _ record.WorkOrderRepository = (*GormWorkOrderRepository)(nil)
