package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/erp/companion/internal/domain/record"
	syncdomain "github.com/erp/companion/internal/domain/sync"
)

// CreateQuote pushes a locally created quote and returns the
// server-assigned identifier.
func (c *Client) CreateQuote(ctx context.Context, quote *record.Quote) (uuid.UUID, error) {
	var created quotePayload
	payload := newQuotePayload(quote, c.tenantID)
	if err := c.doJSON(ctx, http.MethodPost, "/"+record.EntityTypeQuote.String(), payload, &created); err != nil {
		return uuid.Nil, err
	}

	serverID, err := uuid.Parse(created.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: create response carries invalid quote id %q", syncdomain.ErrDecode, created.ID)
	}
	return serverID, nil
}

// UpdateQuote pushes local changes to a quote the server has already
// seen. The quote must carry its server identifier.
func (c *Client) UpdateQuote(ctx context.Context, quote *record.Quote) error {
	if quote.ServerID == nil {
		return fmt.Errorf("cannot update quote %d: no server id assigned", quote.LocalID)
	}
	payload := newQuotePayload(quote, c.tenantID)
	payload.ID = quote.ServerID.String()
	path := fmt.Sprintf("/%s/%s", record.EntityTypeQuote, quote.ServerID)
	return c.doJSON(ctx, http.MethodPut, path, payload, nil)
}

// DeleteQuote removes a quote from the remote store.
func (c *Client) DeleteQuote(ctx context.Context, serverID uuid.UUID) error {
	path := fmt.Sprintf("/%s/%s", record.EntityTypeQuote, serverID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

// ListQuotes fetches the tenant's quotes, translated to local records
// with SYNCED metadata.
func (c *Client) ListQuotes(ctx context.Context) ([]record.Quote, error) {
	var payloads []quotePayload
	if err := c.doJSON(ctx, http.MethodGet, "/"+record.EntityTypeQuote.String(), nil, &payloads); err != nil {
		return nil, err
	}

	quotes := make([]record.Quote, 0, len(payloads))
	for _, payload := range payloads {
		quote, err := payload.toRecord()
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, quote)
	}
	return quotes, nil
}
