package sync

import (
	"context"

	"github.com/google/uuid"

	"github.com/erp/companion/internal/domain/record"
)

// RemoteGateway is the port to the ERP backend's REST API. Create calls
// return the server-assigned identifier; List calls return records already
// translated to local shapes with ServerID set and SyncStatus SYNCED.
//
// Implementations are stateless facades: they do not retry, and they
// surface failures through the sync error taxonomy (ErrNetwork,
// RemoteError, ErrDecode).
type RemoteGateway interface {
	CreateSalesOrder(ctx context.Context, order *record.SalesOrder) (uuid.UUID, error)
	UpdateSalesOrder(ctx context.Context, order *record.SalesOrder) error
	DeleteSalesOrder(ctx context.Context, serverID uuid.UUID) error
	ListSalesOrders(ctx context.Context) ([]record.SalesOrder, error)

	CreateQuote(ctx context.Context, quote *record.Quote) (uuid.UUID, error)
	UpdateQuote(ctx context.Context, quote *record.Quote) error
	DeleteQuote(ctx context.Context, serverID uuid.UUID) error
	ListQuotes(ctx context.Context) ([]record.Quote, error)

	CreateWorkOrder(ctx context.Context, workOrder *record.WorkOrder) (uuid.UUID, error)
	UpdateWorkOrder(ctx context.Context, workOrder *record.WorkOrder) error
	DeleteWorkOrder(ctx context.Context, serverID uuid.UUID) error
	ListWorkOrders(ctx context.Context) ([]record.WorkOrder, error)

	ListCustomers(ctx context.Context) ([]record.Customer, error)
	ListStockItems(ctx context.Context) ([]record.StockItem, error)
}
