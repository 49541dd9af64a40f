package cache

import (
	"context"

	"github.com/erp/companion/internal/domain/record"
)

// SalesOrderService handles sales order operations against the local
// cache. Every write leaves the order PENDING so the next sync pass
// pushes it.
type SalesOrderService struct {
	orderRepo record.SalesOrderRepository
}

// NewSalesOrderService creates a new SalesOrderService
func NewSalesOrderService(orderRepo record.SalesOrderRepository) *SalesOrderService {
	return &SalesOrderService{orderRepo: orderRepo}
}

// Create creates a new sales order in the local cache
func (s *SalesOrderService) Create(ctx context.Context, req CreateSalesOrderRequest) (*SalesOrderResponse, error) {
	order, err := record.NewSalesOrder(req.OrderNumber, req.CustomerID, req.CustomerName)
	if err != nil {
		return nil, err
	}

	items, err := buildSalesOrderItems(req.Items)
	if err != nil {
		return nil, err
	}
	order.ReplaceItems(items)

	if req.Remark != "" {
		order.SetRemark(req.Remark)
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// GetByLocalID retrieves a cached sales order
func (s *SalesOrderService) GetByLocalID(ctx context.Context, localID uint) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByLocalID(ctx, localID)
	if err != nil {
		return nil, err
	}
	response := ToSalesOrderResponse(order)
	return &response, nil
}

// List retrieves all cached sales orders, newest first
func (s *SalesOrderService) List(ctx context.Context) ([]SalesOrderResponse, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]SalesOrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToSalesOrderResponse(&orders[i]))
	}
	return responses, nil
}

// Update edits a cached sales order. Any change flags the order for the
// next push pass; the server ID is never touched.
func (s *SalesOrderService) Update(ctx context.Context, localID uint, req UpdateSalesOrderRequest) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByLocalID(ctx, localID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if err := order.SetStatus(record.OrderStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.Remark != nil {
		order.SetRemark(*req.Remark)
	}
	if req.Items != nil {
		items, err := buildSalesOrderItems(*req.Items)
		if err != nil {
			return nil, err
		}
		order.ReplaceItems(items)
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// Delete removes a sales order from the local cache. The remote copy, if
// one exists, is not touched.
func (s *SalesOrderService) Delete(ctx context.Context, localID uint) error {
	return s.orderRepo.Delete(ctx, localID)
}

func buildSalesOrderItems(inputs []LineItemInput) ([]record.SalesOrderItem, error) {
	items := make([]record.SalesOrderItem, 0, len(inputs))
	for _, input := range inputs {
		item, err := record.NewSalesOrderItem(
			input.ProductID,
			input.ProductName,
			input.ProductCode,
			input.Quantity,
			input.UnitPrice,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, nil
}
