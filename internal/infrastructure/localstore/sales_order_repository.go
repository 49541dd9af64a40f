package localstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/erp/companion/internal/domain/record"
	"github.com/erp/companion/internal/domain/shared"
)

// GormSalesOrderRepository implements record.SalesOrderRepository using
// GORM over the embedded sqlite cache
type GormSalesOrderRepository struct {
	db *gorm.DB
}

// NewGormSalesOrderRepository creates a new GormSalesOrderRepository
func NewGormSalesOrderRepository(db *gorm.DB) *GormSalesOrderRepository {
	return &GormSalesOrderRepository{db: db}
}

// Save persists the order and its full line item set in one transaction.
// The previous item set is deleted and the new one reinserted wholesale;
// line items have no identity across edits.
func (r *GormSalesOrderRepository) Save(ctx context.Context, order *record.SalesOrder) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if order.LocalID == 0 {
			return tx.Create(order).Error
		}

		if err := tx.Omit("Items").Save(order).Error; err != nil {
			return err
		}
		if err := tx.Where("order_local_id = ?", order.LocalID).
			Delete(&record.SalesOrderItem{}).Error; err != nil {
			return err
		}
		for i := range order.Items {
			order.Items[i].LocalID = 0
			order.Items[i].OrderLocalID = order.LocalID
		}
		if len(order.Items) > 0 {
			if err := tx.Create(&order.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return wrapErr(err)
}

// FindByLocalID finds an order by its local identifier
func (r *GormSalesOrderRepository) FindByLocalID(ctx context.Context, localID uint) (*record.SalesOrder, error) {
	var order record.SalesOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "local_id = ?", localID).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &order, nil
}

// FindByServerID finds an order by its server-assigned identifier
func (r *GormSalesOrderRepository) FindByServerID(ctx context.Context, serverID uuid.UUID) (*record.SalesOrder, error) {
	var order record.SalesOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "server_id = ?", serverID).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &order, nil
}

// List returns all cached orders, newest first
func (r *GormSalesOrderRepository) List(ctx context.Context) ([]record.SalesOrder, error) {
	var orders []record.SalesOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		return nil, wrapErr(err)
	}
	return orders, nil
}

// ListPending returns orders awaiting push, oldest first so earlier local
// edits reach the server first
func (r *GormSalesOrderRepository) ListPending(ctx context.Context) ([]record.SalesOrder, error) {
	var orders []record.SalesOrder
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("sync_status = ?", record.SyncStatusPending).
		Order("local_id ASC").
		Find(&orders).Error; err != nil {
		return nil, wrapErr(err)
	}
	return orders, nil
}

// CountPending counts orders awaiting push
func (r *GormSalesOrderRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&record.SalesOrder{}).
		Where("sync_status = ?", record.SyncStatusPending).
		Count(&count).Error; err != nil {
		return 0, wrapErr(err)
	}
	return count, nil
}

// MarkSynced rewrites the row with its server identifier and SYNCED
// status after a successful push
func (r *GormSalesOrderRepository) MarkSynced(ctx context.Context, localID uint, serverID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&record.SalesOrder{}).
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

// Delete removes an order and its line items
func (r *GormSalesOrderRepository) Delete(ctx context.Context, localID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_local_id = ?", localID).
			Delete(&record.SalesOrderItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&record.SalesOrder{}, "local_id = ?", localID)
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

// Ensure GormSalesOrderRepository implements record.SalesOrderRepository
var _ record.SalesOrderRepository = (*GormSalesOrderRepository)(nil)
