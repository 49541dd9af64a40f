package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/companion/internal/domain/record"
	syncdomain "github.com/erp/companion/internal/domain/sync"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(baseURL, uuid.New(), 5*time.Second)
	require.NoError(t, err)
	return client
}

func pendingSalesOrder(t *testing.T) *record.SalesOrder {
	t.Helper()
	order, err := record.NewSalesOrder("SO-001", uuid.New(), "Acme Trading")
	require.NoError(t, err)
	item, err := record.NewSalesOrderItem(uuid.New(), "Widget", "W-001",
		decimal.NewFromInt(2), decimal.NewFromInt(10))
	require.NoError(t, err)
	order.ReplaceItems([]record.SalesOrderItem{*item})
	return order
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		tenant  uuid.UUID
		wantErr bool
	}{
		{"valid http URL", "http://127.0.0.1:8080", uuid.New(), false},
		{"valid https URL with path", "https://erp.example.com/api/v1", uuid.New(), false},
		{"missing scheme", "erp.example.com", uuid.New(), true},
		{"unsupported scheme", "ftp://erp.example.com", uuid.New(), true},
		{"empty URL", "", uuid.New(), true},
		{"nil tenant", "http://127.0.0.1:8080", uuid.Nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.baseURL, tt.tenant, time.Second)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_CreateSalesOrder(t *testing.T) {
	serverID := uuid.New()
	tenantID := uuid.New()

	var got salesOrderPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/SalesOrders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		got.ID = serverID.String()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(got)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, tenantID, 5*time.Second)
	require.NoError(t, err)

	order := pendingSalesOrder(t)
	created, err := client.CreateSalesOrder(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, serverID, created)

	assert.Equal(t, tenantID.String(), got.TenantID, "tenant is injected into every document")
	assert.Equal(t, "SO-001", got.OrderNumber)
	require.Len(t, got.SalesOrderItems, 1)
	assert.Equal(t, "Widget", got.SalesOrderItems[0].ProductName)
}

func TestClient_ErrorTaxonomy(t *testing.T) {
	t.Run("non-2xx becomes RemoteError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		_, err := client.CreateSalesOrder(context.Background(), pendingSalesOrder(t))

		var remoteErr *syncdomain.RemoteError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, http.StatusInternalServerError, remoteErr.StatusCode)
		assert.Contains(t, remoteErr.Body, "boom")
	})

	t.Run("transport failure wraps ErrNetwork", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		server.Close()

		client := newTestClient(t, server.URL)
		_, err := client.ListSalesOrders(context.Background())
		assert.ErrorIs(t, err, syncdomain.ErrNetwork)
	})

	t.Run("unparsable body wraps ErrDecode", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		_, err := client.ListSalesOrders(context.Background())
		assert.ErrorIs(t, err, syncdomain.ErrDecode)
	})

	t.Run("invalid id in list wraps ErrDecode", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[{"id":"not-a-uuid","orderNumber":"SO-1","customerId":"also-bad","status":"DRAFT"}]`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		_, err := client.ListSalesOrders(context.Background())
		assert.ErrorIs(t, err, syncdomain.ErrDecode)
	})
}

func TestClient_ListSalesOrders(t *testing.T) {
	serverID := uuid.New()
	customerID := uuid.New()
	productID := uuid.New()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/SalesOrders", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]salesOrderPayload{{
			ID:           serverID.String(),
			OrderNumber:  "SO-100",
			CustomerID:   customerID.String(),
			CustomerName: "Acme Trading",
			Status:       "CONFIRMED",
			TotalAmount:  decimal.NewFromInt(19),
			SalesOrderItems: []salesOrderItemPayload{{
				ProductID:   productID.String(),
				ProductName: "Widget",
				Quantity:    decimal.NewFromInt(2),
				UnitPrice:   decimal.NewFromFloat(9.5),
				Amount:      decimal.NewFromInt(19),
			}},
		}})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	orders, err := client.ListSalesOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)

	order := orders[0]
	require.NotNil(t, order.ServerID)
	assert.Equal(t, serverID, *order.ServerID)
	assert.Equal(t, record.SyncStatusSynced, order.SyncStatus, "pulled records arrive synced")
	assert.Equal(t, record.OrderStatusConfirmed, order.Status)
	assert.Equal(t, customerID, order.CustomerID)
	require.Len(t, order.Items, 1)
	assert.Equal(t, productID, order.Items[0].ProductID)
}

func TestClient_UpdateSalesOrder(t *testing.T) {
	t.Run("requires a server ID", func(t *testing.T) {
		client := newTestClient(t, "http://127.0.0.1:1")
		err := client.UpdateSalesOrder(context.Background(), pendingSalesOrder(t))
		assert.Error(t, err)
	})

	t.Run("puts to the document path", func(t *testing.T) {
		serverID := uuid.New()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/SalesOrders/"+serverID.String(), r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		order := pendingSalesOrder(t)
		require.NoError(t, order.MarkSynced(serverID))
		order.MarkPending()

		client := newTestClient(t, server.URL)
		assert.NoError(t, client.UpdateSalesOrder(context.Background(), order))
	})
}

func TestClient_ListCustomers(t *testing.T) {
	serverID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Customers", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]customerPayload{{
			ID:    serverID.String(),
			Code:  "CUST-001",
			Name:  "Acme Trading",
			Phone: "13800138000",
		}})
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	customers, err := client.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Acme Trading", customers[0].Name)
	require.NotNil(t, customers[0].ServerID)
	assert.Equal(t, serverID, *customers[0].ServerID)
	assert.Equal(t, record.SyncStatusSynced, customers[0].SyncStatus)
}
