package remote

import (
	"context"
	"net/http"

	"github.com/erp/companion/internal/domain/record"
)

// ListCustomers fetches the tenant's customer directory for the pull-only
// reference cache.
func (c *Client) ListCustomers(ctx context.Context) ([]record.Customer, error) {
	var payloads []customerPayload
	if err := c.doJSON(ctx, http.MethodGet, "/Customers", nil, &payloads); err != nil {
		return nil, err
	}

	customers := make([]record.Customer, 0, len(payloads))
	for _, payload := range payloads {
		customer, err := payload.toRecord()
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, nil
}

// ListStockItems fetches the tenant's stock catalog for the pull-only
// reference cache.
func (c *Client) ListStockItems(ctx context.Context) ([]record.StockItem, error) {
	var payloads []stockItemPayload
	if err := c.doJSON(ctx, http.MethodGet, "/StockItems", nil, &payloads); err != nil {
		return nil, err
	}

	items := make([]record.StockItem, 0, len(payloads))
	for _, payload := range payloads {
		item, err := payload.toRecord()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
