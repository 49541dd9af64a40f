package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/erp/companion/internal/domain/record"
	syncdomain "github.com/erp/companion/internal/domain/sync"
)

// CreateWorkOrder pushes a locally created work order and returns the
// server-assigned identifier.
func (c *Client) CreateWorkOrder(ctx context.Context, workOrder *record.WorkOrder) (uuid.UUID, error) {
	var created workOrderPayload
	payload := newWorkOrderPayload(workOrder, c.tenantID)
	if err := c.doJSON(ctx, http.MethodPost, "/"+record.EntityTypeWorkOrder.String(), payload, &created); err != nil {
		return uuid.Nil, err
	}

	serverID, err := uuid.Parse(created.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: create response carries invalid work order id %q", syncdomain.ErrDecode, created.ID)
	}
	return serverID, nil
}

// UpdateWorkOrder pushes local changes to a work order the server has
// already seen. The work order must carry its server identifier.
func (c *Client) UpdateWorkOrder(ctx context.Context, workOrder *record.WorkOrder) error {
	if workOrder.ServerID == nil {
		return fmt.Errorf("cannot update work order %d: no server id assigned", workOrder.LocalID)
	}
	payload := newWorkOrderPayload(workOrder, c.tenantID)
	payload.ID = workOrder.ServerID.String()
	path := fmt.Sprintf("/%s/%s", record.EntityTypeWorkOrder, workOrder.ServerID)
	return c.doJSON(ctx, http.MethodPut, path, payload, nil)
}

// DeleteWorkOrder removes a work order from the remote store.
func (c *Client) DeleteWorkOrder(ctx context.Context, serverID uuid.UUID) error {
	path := fmt.Sprintf("/%s/%s", record.EntityTypeWorkOrder, serverID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// ListWorkOrders fetches the tenant's work orders, translated to local
// records with SYNCED metadata.
func (c *Client) ListWorkOrders(ctx context.Context) ([]record.WorkOrder, error) {
	var payloads []workOrderPayload
	if err := c.doJSON(ctx, http.MethodGet, "/"+record.EntityTypeWorkOrder.String(), nil, &payloads); err != nil {
		return nil, err
	}

	workOrders := make([]record.WorkOrder, 0, len(payloads))
	for _, payload := range payloads {
		workOrder, err := payload.toRecord()
		if err != nil {
			return nil, err
		}
		workOrders = append(workOrders, workOrder)
	}
	return workOrders, nil
}
