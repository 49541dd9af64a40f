package record

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSalesOrder(t *testing.T) {
	customerID := uuid.New()

	t.Run("creates a pending draft", func(t *testing.T) {
		order, err := NewSalesOrder("SO-001", customerID, "Acme Trading")
		require.NoError(t, err)

		assert.Equal(t, OrderStatusDraft, order.Status)
		assert.True(t, order.IsPending())
		assert.True(t, order.TotalAmount.IsZero())
		assert.Empty(t, order.Items)
	})

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name         string
			orderNumber  string
			customerID   uuid.UUID
			customerName string
		}{
			{"empty order number", "", customerID, "Acme"},
			{"order number too long", strings.Repeat("X", 51), customerID, "Acme"},
			{"nil customer", "SO-001", uuid.Nil, "Acme"},
			{"empty customer name", "SO-001", customerID, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewSalesOrder(tt.orderNumber, tt.customerID, tt.customerName)
				assert.Error(t, err)
			})
		}
	})
}

func TestNewSalesOrderItem(t *testing.T) {
	productID := uuid.New()

	t.Run("amount is quantity times unit price", func(t *testing.T) {
		item, err := NewSalesOrderItem(productID, "Widget", "W-001",
			decimal.NewFromInt(3), decimal.NewFromFloat(9.99))
		require.NoError(t, err)
		assert.True(t, item.Amount.Equal(decimal.NewFromFloat(29.97)))
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewSalesOrderItem(productID, "Widget", "", decimal.Zero, decimal.NewFromInt(1))
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewSalesOrderItem(productID, "Widget", "", decimal.NewFromInt(1), decimal.NewFromInt(-1))
		assert.Error(t, err)
	})
}

func TestSalesOrder_ReplaceItems(t *testing.T) {
	order, err := NewSalesOrder("SO-001", uuid.New(), "Acme Trading")
	require.NoError(t, err)
	require.NoError(t, order.MarkSynced(uuid.New()))

	first, err := NewSalesOrderItem(uuid.New(), "Widget", "", decimal.NewFromInt(2), decimal.NewFromInt(10))
	require.NoError(t, err)
	second, err := NewSalesOrderItem(uuid.New(), "Gadget", "", decimal.NewFromInt(1), decimal.NewFromInt(5))
	require.NoError(t, err)

	order.ReplaceItems([]SalesOrderItem{*first, *second})

	assert.Equal(t, 2, order.ItemCount())
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(25)))
	assert.True(t, order.IsPending(), "editing a synced order flags it for re-push")
	assert.NotNil(t, order.ServerID)
}

func TestSalesOrder_SetStatus(t *testing.T) {
	order, err := NewSalesOrder("SO-001", uuid.New(), "Acme Trading")
	require.NoError(t, err)

	require.NoError(t, order.SetStatus(OrderStatusConfirmed))
	assert.Equal(t, OrderStatusConfirmed, order.Status)

	assert.Error(t, order.SetStatus(OrderStatus("SHIPPED")))
	assert.Equal(t, OrderStatusConfirmed, order.Status)
}
