package record

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/erp/companion/internal/domain/shared"
)

// OrderStatus represents the status of a sales order
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "DRAFT"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusConfirmed, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// SalesOrderItem represents a line item in a locally cached sales order.
// Items carry no identity of their own; they belong to the order by local
// ID and are replaced wholesale whenever the order is saved.
type SalesOrderItem struct {
	LocalID      uint            `gorm:"primaryKey;autoIncrement" json:"local_id"`
	OrderLocalID uint            `gorm:"not null;index" json:"order_local_id"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	ProductName  string          `gorm:"size:200;not null" json:"product_name"`
	ProductCode  string          `gorm:"size:50" json:"product_code"`
	Quantity     decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"unit_price"`
	Amount       decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
}

// NewSalesOrderItem creates a new sales order line item
func NewSalesOrderItem(productID uuid.UUID, productName, productCode string, quantity, unitPrice decimal.Decimal) (*SalesOrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &SalesOrderItem{
		ProductID:   productID,
		ProductName: productName,
		ProductCode: productCode,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Amount:      quantity.Mul(unitPrice).Round(4),
	}, nil
}

// SalesOrder represents a sales order in the offline cache
type SalesOrder struct {
	SyncMeta
	OrderNumber  string           `gorm:"size:50;not null" json:"order_number"`
	CustomerID   uuid.UUID        `gorm:"type:uuid;not null" json:"customer_id"`
	CustomerName string           `gorm:"size:200;not null" json:"customer_name"`
	Status       OrderStatus      `gorm:"size:20;not null;default:'DRAFT'" json:"status"`
	TotalAmount  decimal.Decimal  `gorm:"type:decimal(20,4);not null" json:"total_amount"`
	Remark       string           `gorm:"size:500" json:"remark"`
	Items        []SalesOrderItem `gorm:"foreignKey:OrderLocalID;references:LocalID;constraint:OnDelete:CASCADE" json:"items"`
}

// NewSalesOrder creates a new locally pending sales order
func NewSalesOrder(orderNumber string, customerID uuid.UUID, customerName string) (*SalesOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}

	return &SalesOrder{
		SyncMeta:     NewSyncMeta(),
		OrderNumber:  orderNumber,
		CustomerID:   customerID,
		CustomerName: customerName,
		Status:       OrderStatusDraft,
		TotalAmount:  decimal.Zero,
		Items:        make([]SalesOrderItem, 0),
	}, nil
}

// ReplaceItems swaps the full line item set and flags the order for push.
// The previous set is discarded; items have no stable identity across
// edits.
func (o *SalesOrder) ReplaceItems(items []SalesOrderItem) {
	o.Items = make([]SalesOrderItem, len(items))
	copy(o.Items, items)
	for i := range o.Items {
		o.Items[i].LocalID = 0
		o.Items[i].OrderLocalID = o.LocalID
	}
	o.recalculateTotal()
	o.MarkPending()
}

// SetStatus updates the order status and flags the order for push
func (o *SalesOrder) SetStatus(status OrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status")
	}
	o.Status = status
	o.MarkPending()
	return nil
}

// SetRemark sets the order remark and flags the order for push
func (o *SalesOrder) SetRemark(remark string) {
	o.Remark = remark
	o.MarkPending()
}

// ItemCount returns the number of line items on the order
func (o *SalesOrder) ItemCount() int {
	return len(o.Items)
}

func (o *SalesOrder) recalculateTotal() {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Amount)
	}
	o.TotalAmount = total
}
