package localstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/erp/companion/internal/domain/record"
	"github.com/erp/companion/internal/domain/shared"
)

// GormQuoteRepository implements record.QuoteRepository using GORM over
// the embedded sqlite cache
type GormQuoteRepository struct {
	db *gorm.DB
}

// NewGormQuoteRepository creates a new GormQuoteRepository
func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

// Save persists the quote and its full line item set in one transaction,
// replacing any previously stored items
func (r *GormQuoteRepository) Save(ctx context.Context, quote *record.Quote) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if quote.LocalID == 0 {
			return tx.Create(quote).Error
		}

		if err := tx.Omit("Items").Save(quote).Error; err != nil {
			return err
		}
		if err := tx.Where("quote_local_id = ?", quote.LocalID).
			Delete(&record.QuoteItem{}).Error; err != nil {
			return err
		}
		for i := range quote.Items {
			quote.Items[i].LocalID = 0
			quote.Items[i].QuoteLocalID = quote.LocalID
		}
		if len(quote.Items) > 0 {
			if err := tx.Create(&quote.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return wrapErr(err)
}

// FindByLocalID finds a quote by its local identifier
func (r *GormQuoteRepository) FindByLocalID(ctx context.Context, localID uint) (*record.Quote, error) {
	var quote record.Quote
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&quote, "local_id = ?", localID).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &quote, nil
}

// FindByServerID finds a quote by its server-assigned identifier
func (r *GormQuoteRepository) FindByServerID(ctx context.Context, serverID uuid.UUID) (*record.Quote, error) {
	var quote record.Quote
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&quote, "server_id = ?", serverID).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &quote, nil
}

// List returns all cached quotes, newest first
func (r *GormQuoteRepository) List(ctx context.Context) ([]record.Quote, error) {
	var quotes []record.Quote
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&quotes).Error; err != nil {
		return nil, wrapErr(err)
	}
	return quotes, nil
}

// ListPending returns quotes awaiting push, oldest first
func (r *GormQuoteRepository) ListPending(ctx context.Context) ([]record.Quote, error) {
	var quotes []record.Quote
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("sync_status = ?", record.SyncStatusPending).
		Order("local_id ASC").
		Find(&quotes).Error; err != nil {
		return nil, wrapErr(err)
	}
	return quotes, nil
}

// CountPending counts quotes awaiting push
func (r *GormQuoteRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&record.Quote{}).
		Where("sync_status = ?", record.SyncStatusPending).
		Count(&count).Error; err != nil {
		return 0, wrapErr(err)
	}
	return count, nil
}

// MarkSynced rewrites the row with its server identifier and SYNCED
// status after a successful push
func (r *GormQuoteRepository) MarkSynced(ctx context.Context, localID uint, serverID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&record.Quote{}).
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

// Delete removes a quote and its line items
func (r *GormQuoteRepository) Delete(ctx context.Context, localID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quote_local_id = ?", localID).
			Delete(&record.QuoteItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&record.Quote{}, "local_id = ?", localID)
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

// Ensure GormQuoteRepository implements record.QuoteRepository
var _ record.QuoteRepository = (*GormQuoteRepository)(nil)
