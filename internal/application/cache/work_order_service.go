package cache

import (
	"context"

	"github.com/erp/companion/internal/domain/record"
)

// WorkOrderService handles work order operations against the local cache
type WorkOrderService struct {
	workOrderRepo record.WorkOrderRepository
}

// NewWorkOrderService creates a new WorkOrderService
func NewWorkOrderService(workOrderRepo record.WorkOrderRepository) *WorkOrderService {
	return &WorkOrderService{workOrderRepo: workOrderRepo}
}

// Create creates a new work order in the local cache
func (s *WorkOrderService) Create(ctx context.Context, req CreateWorkOrderRequest) (*WorkOrderResponse, error) {
	workOrder, err := record.NewWorkOrder(req.WorkOrderNumber, req.CustomerID, req.CustomerName)
	if err != nil {
		return nil, err
	}

	items, err := buildWorkOrderItems(req.Items)
	if err != nil {
		return nil, err
	}
	workOrder.ReplaceItems(items)

	if req.Description != "" {
		workOrder.SetDescription(req.Description)
	}
	if req.ScheduledFor != nil {
		workOrder.SetScheduledFor(*req.ScheduledFor)
	}

	if err := s.workOrderRepo.Save(ctx, workOrder); err != nil {
		return nil, err
	}

	response := ToWorkOrderResponse(workOrder)
	return &response, nil
}

// GetByLocalID retrieves a cached work order
func (s *WorkOrderService) GetByLocalID(ctx context.Context, localID uint) (*WorkOrderResponse, error) {
	workOrder, err := s.workOrderRepo.FindByLocalID(ctx, localID)
	if err != nil {
		return nil, err
	}
	response := ToWorkOrderResponse(workOrder)
	return &response, nil
}

// List retrieves all cached work orders, newest first
func (s *WorkOrderService) List(ctx context.Context) ([]WorkOrderResponse, error) {
	workOrders, err := s.workOrderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]WorkOrderResponse, 0, len(workOrders))
	for i := range workOrders {
		responses = append(responses, ToWorkOrderResponse(&workOrders[i]))
	}
	return responses, nil
}

// Update edits a cached work order and flags it for the next push pass
func (s *WorkOrderService) Update(ctx context.Context, localID uint, req UpdateWorkOrderRequest) (*WorkOrderResponse, error) {
	workOrder, err := s.workOrderRepo.FindByLocalID(ctx, localID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if err := workOrder.SetStatus(record.WorkOrderStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		workOrder.SetDescription(*req.Description)
	}
	if req.ScheduledFor != nil {
		workOrder.SetScheduledFor(*req.ScheduledFor)
	}
	if req.Items != nil {
		items, err := buildWorkOrderItems(*req.Items)
		if err != nil {
			return nil, err
		}
		workOrder.ReplaceItems(items)
	}

	if err := s.workOrderRepo.Save(ctx, workOrder); err != nil {
		return nil, err
	}

	response := ToWorkOrderResponse(workOrder)
	return &response, nil
}

// Delete removes a work order from the local cache
func (s *WorkOrderService) Delete(ctx context.Context, localID uint) error {
	return s.workOrderRepo.Delete(ctx, localID)
}

func buildWorkOrderItems(inputs []WorkItemInput) ([]record.WorkOrderItem, error) {
	items := make([]record.WorkOrderItem, 0, len(inputs))
	for _, input := range inputs {
		item, err := record.NewWorkOrderItem(input.Description, input.Quantity, input.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}
