package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/erp/companion/internal/domain/record"
	syncdomain "github.com/erp/companion/internal/domain/sync"
)

// CreateSalesOrder pushes a locally created sales order and returns the
// server-assigned identifier.
func (c *Client) CreateSalesOrder(ctx context.Context, order *record.SalesOrder) (uuid.UUID, error) {
	var created salesOrderPayload
	payload := newSalesOrderPayload(order, c.tenantID)
	if err := c.doJSON(ctx, http.MethodPost, "/"+record.EntityTypeSalesOrder.String(), payload, &created); err != nil {
		return uuid.Nil, err
	}

	serverID, err := uuid.Parse(created.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: create response carries invalid sales order id %q", syncdomain.ErrDecode, created.ID)
	}
	return serverID, nil
}

// UpdateSalesOrder pushes local changes to a sales order the server has
// already seen. The order must carry its server identifier.
func (c *Client) UpdateSalesOrder(ctx context.Context, order *record.SalesOrder) error {
	if order.ServerID == nil {
		return fmt.Errorf("cannot update sales order %d: no server id assigned", order.LocalID)
	}
	payload := newSalesOrderPayload(order, c.tenantID)
	payload.ID = order.ServerID.String()
	path := fmt.Sprintf("/%s/%s", record.EntityTypeSalesOrder, order.ServerID)
	return c.doJSON(ctx, http.MethodPut, path, payload, nil)
}

// DeleteSalesOrder removes a sales order from the remote store.
func (c *Client) DeleteSalesOrder(ctx context.Context, serverID uuid.UUID) error {
	path := fmt.Sprintf("/%s/%s", record.EntityTypeSalesOrder, serverID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// ListSalesOrders fetches the tenant's sales orders, translated to local
// records with SYNCED metadata.
func (c *Client) ListSalesOrders(ctx context.Context) ([]record.SalesOrder, error) {
	var payloads []salesOrderPayload
	if err := c.doJSON(ctx, http.MethodGet, "/"+record.EntityTypeSalesOrder.String(), nil, &payloads); err != nil {
		return nil, err
	}

	orders := make([]record.SalesOrder, 0, len(payloads))
	for _, payload := range payloads {
		order, err := payload.toRecord()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}
