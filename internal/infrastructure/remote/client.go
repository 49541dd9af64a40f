package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	syncdomain "github.com/erp/companion/internal/domain/sync"
)

// maxResponseSize is the maximum allowed response size from the backend
// API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// Client is a stateless HTTP facade over the ERP backend's REST API. It
// holds an immutable base URL: callers construct a fresh client from the
// settings snapshot for each sync invocation rather than mutating a
// shared instance.
type Client struct {
	baseURL    string
	tenantID   uuid.UUID
	httpClient *http.Client
}

// NewClient creates a client for the given API base URL. Each HTTP call
// carries a fixed timeout; there is no internal retry.
func NewClient(baseURL string, tenantID uuid.UUID, timeout time.Duration) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API base URL %q: %w", baseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q: expected http(s)://host", baseURL)
	}
	if tenantID == uuid.Nil {
		return nil, fmt.Errorf("tenant ID must be set")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		tenantID: tenantID,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// doJSON performs one JSON request against the backend and decodes the
// response into out (when out is non-nil). Failures map onto the sync
// error taxonomy: transport problems wrap ErrNetwork, non-2xx statuses
// become RemoteError, and an unparsable body wraps ErrDecode.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", syncdomain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: %v", syncdomain.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return syncdomain.NewRemoteError(resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %v", syncdomain.ErrDecode, err)
	}
	return nil
}

// Ensure Client implements the sync gateway port
var _ syncdomain.RemoteGateway = (*Client)(nil)
