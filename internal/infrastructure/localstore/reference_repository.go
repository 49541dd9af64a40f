package localstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/erp/companion/internal/domain/record"
	"github.com/erp/companion/internal/domain/shared"
)

// GormCustomerRepository implements record.CustomerRepository for the
// pull-only customer cache
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// InsertIfAbsent inserts the customer unless a row with the same server
// ID already exists. The existing row is left untouched (local-wins).
func (r *GormCustomerRepository) InsertIfAbsent(ctx context.Context, customer *record.Customer) (bool, error) {
	if customer.ServerID == nil {
		return false, shared.NewDomainError("INVALID_SERVER_ID", "Pulled customer must carry a server ID")
	}

	_, err := r.FindByServerID(ctx, *customer.ServerID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return false, err
	}

	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return false, wrapErr(err)
	}
	return true, nil
}

// FindByServerID finds a cached customer by server identifier
func (r *GormCustomerRepository) FindByServerID(ctx context.Context, serverID uuid.UUID) (*record.Customer, error) {
	var customer record.Customer
	if err := r.db.WithContext(ctx).
		First(&customer, "server_id = ?", serverID).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &customer, nil
}

// List returns all cached customers ordered by name
func (r *GormCustomerRepository) List(ctx context.Context) ([]record.Customer, error) {
	var customers []record.Customer
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&customers).Error; err != nil {
		return nil, wrapErr(err)
	}
	return customers, nil
}

// GormStockItemRepository implements record.StockItemRepository for the
// pull-only stock item cache
type GormStockItemRepository struct {
	db *gorm.DB
}

// NewGormStockItemRepository creates a new GormStockItemRepository
func NewGormStockItemRepository(db *gorm.DB) *GormStockItemRepository {
	return &GormStockItemRepository{db: db}
}

// InsertIfAbsent inserts the stock item unless a row with the same server
// ID already exists
func (r *GormStockItemRepository) InsertIfAbsent(ctx context.Context, item *record.StockItem) (bool, error) {
	if item.ServerID == nil {
		return false, shared.NewDomainError("INVALID_SERVER_ID", "Pulled stock item must carry a server ID")
	}

	_, err := r.FindByServerID(ctx, *item.ServerID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return false, err
	}

	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return false, wrapErr(err)
	}
	return true, nil
}

// FindByServerID finds a cached stock item by server identifier
func (r *GormStockItemRepository) FindByServerID(ctx context.Context, serverID uuid.UUID) (*record.StockItem, error) {
	var item record.StockItem
	if err := r.db.WithContext(ctx).
		First(&item, "server_id = ?", serverID).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &item, nil
}

// List returns all cached stock items ordered by name
func (r *GormStockItemRepository) List(ctx context.Context) ([]record.StockItem, error) {
	var items []record.StockItem
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&items).Error; err != nil {
		return nil, wrapErr(err)
	}
	return items, nil
}

// Ensure repositories implement their interfaces
var (
	_ record.CustomerRepository  = (*GormCustomerRepository)(nil)
	_ record.StockItemRepository = (*GormStockItemRepository)(nil)
)
