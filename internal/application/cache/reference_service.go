package cache

import (
	"context"

	"github.com/erp/companion/internal/domain/record"
)

// ReferenceService exposes the pull-only customer and stock caches to
// the UI. Reference data is read-only locally; it refreshes on pull.
type ReferenceService struct {
	customerRepo  record.CustomerRepository
	stockItemRepo record.StockItemRepository
}

// NewReferenceService creates a new ReferenceService
func NewReferenceService(customerRepo record.CustomerRepository, stockItemRepo record.StockItemRepository) *ReferenceService {
	return &ReferenceService{
		customerRepo:  customerRepo,
		stockItemRepo: stockItemRepo,
	}
}

// ListCustomers retrieves all cached customers ordered by name
func (s *ReferenceService) ListCustomers(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, ToCustomerResponse(&customers[i]))
	}
	return responses, nil
}

// ListStockItems retrieves all cached stock items ordered by name
func (s *ReferenceService) ListStockItems(ctx context.Context) ([]StockItemResponse, error) {
	items, err := s.stockItemRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]StockItemResponse, 0, len(items))
	for i := range items {
		responses = append(responses, ToStockItemResponse(&items[i]))
	}
	return responses, nil
}
