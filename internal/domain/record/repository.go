package record

import (
	"context"

	"github.com/google/uuid"
)

// SalesOrderRepository defines persistence operations for cached sales
// orders. Save persists the order and its full line item set in a single
// transaction, replacing any previously stored items.
type SalesOrderRepository interface {
	Save(ctx context.Context, order *SalesOrder) error
	FindByLocalID(ctx context.Context, localID uint) (*SalesOrder, error)
	FindByServerID(ctx context.Context, serverID uuid.UUID) (*SalesOrder, error)
	List(ctx context.Context) ([]SalesOrder, error)
	ListPending(ctx context.Context) ([]SalesOrder, error)
	CountPending(ctx context.Context) (int64, error)
	MarkSynced(ctx context.Context, localID uint, serverID uuid.UUID) error
	Delete(ctx context.Context, localID uint) error
}

// QuoteRepository defines persistence operations for cached quotes
type QuoteRepository interface {
	Save(ctx context.Context, quote *Quote) error
	FindByLocalID(ctx context.Context, localID uint) (*Quote, error)
	FindByServerID(ctx context.Context, serverID uuid.UUID) (*Quote, error)
	List(ctx context.Context) ([]Quote, error)
	ListPending(ctx context.Context) ([]Quote, error)
	CountPending(ctx context.Context) (int64, error)
	MarkSynced(ctx context.Context, localID uint, serverID uuid.UUID) error
	Delete(ctx context.Context, localID uint) error
}

// WorkOrderRepository defines persistence operations for cached work
// orders
type WorkOrderRepository interface {
	Save(ctx context.Context, workOrder *WorkOrder) error
	FindByLocalID(ctx context.Context, localID uint) (*WorkOrder, error)
	FindByServerID(ctx context.Context, serverID uuid.UUID) (*WorkOrder, error)
	List(ctx context.Context) ([]WorkOrder, error)
	ListPending(ctx context.Context) ([]WorkOrder, error)
	CountPending(ctx context.Context) (int64, error)
	MarkSynced(ctx context.Context, localID uint, serverID uuid.UUID) error
	Delete(ctx context.Context, localID uint) error
}

// CustomerRepository defines persistence operations for the pull-only
// customer cache. InsertIfAbsent reports whether a row was inserted; an
// existing row with the same server ID is left untouched.
type CustomerRepository interface {
	InsertIfAbsent(ctx context.Context, customer *Customer) (bool, error)
	FindByServerID(ctx context.Context, serverID uuid.UUID) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
}

// StockItemRepository defines persistence operations for the pull-only
// stock item cache
type StockItemRepository interface {
	InsertIfAbsent(ctx context.Context, item *StockItem) (bool, error)
	FindByServerID(ctx context.Context, serverID uuid.UUID) (*StockItem, error)
	List(ctx context.Context) ([]StockItem, error)
}
