package cache

import (
	"context"

	"github.com/erp/companion/internal/domain/record"
)

// QuoteService handles quote operations against the local cache
type QuoteService struct {
	quoteRepo record.QuoteRepository
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(quoteRepo record.QuoteRepository) *QuoteService {
	return &QuoteService{quoteRepo: quoteRepo}
}

// Create creates a new quote in the local cache
func (s *QuoteService) Create(ctx context.Context, req CreateQuoteRequest) (*QuoteResponse, error) {
	quote, err := record.NewQuote(req.QuoteNumber, req.CustomerID, req.CustomerName)
	if err != nil {
		return nil, err
	}

	items, err := buildQuoteItems(req.Items)
	if err != nil {
		return nil, err
	}
	quote.ReplaceItems(items)

	if req.ValidUntil != nil {
		quote.SetValidUntil(*req.ValidUntil)
	}
	if req.Remark != "" {
		quote.SetRemark(req.Remark)
	}

	if err := s.quoteRepo.Save(ctx, quote); err != nil {
		return nil, err
	}

	response := ToQuoteResponse(quote)
	return &response, nil
}

// GetByLocalID retrieves a cached quote
func (s *QuoteService) GetByLocalID(ctx context.Context, localID uint) (*QuoteResponse, error) {
	quote, err := s.quoteRepo.FindByLocalID(ctx, localID)
	if err != nil {
		return nil, err
	}
	response := ToQuoteResponse(quote)
	return &response, nil
}

// List retrieves all cached quotes, newest first
func (s *QuoteService) List(ctx context.Context) ([]QuoteResponse, error) {
	quotes, err := s.quoteRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]QuoteResponse, 0, len(quotes))
	for i := range quotes {
		responses = append(responses, ToQuoteResponse(&quotes[i]))
	}
	return responses, nil
}

// Update edits a cached quote and flags it for the next push pass
func (s *QuoteService) Update(ctx context.Context, localID uint, req UpdateQuoteRequest) (*QuoteResponse, error) {
	quote, err := s.quoteRepo.FindByLocalID(ctx, localID)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if err := quote.SetStatus(record.QuoteStatus(*req.Status)); err != nil {
			return nil, err
		}
	}
	if req.ValidUntil != nil {
		quote.SetValidUntil(*req.ValidUntil)
	}
	if req.Remark != nil {
		quote.SetRemark(*req.Remark)
	}
	if req.Items != nil {
		items, err := buildQuoteItems(*req.Items)
		if err != nil {
			return nil, err
		}
		quote.ReplaceItems(items)
	}

	if err := s.quoteRepo.Save(ctx, quote); err != nil {
		return nil, err
	}

	response := ToQuoteResponse(quote)
	return &response, nil
}

// Delete removes a quote from the local cache
func (s *QuoteService) Delete(ctx context.Context, localID uint) error {
	return s.quoteRepo.Delete(ctx, localID)
}

func buildQuoteItems(inputs []LineItemInput) ([]record.QuoteItem, error) {
	items := make([]record.QuoteItem, 0, len(inputs))
	for _, input := range inputs {
		item, err := record.NewQuoteItem(
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
