package record

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/erp/companion/internal/domain/shared"
)

// WorkOrderStatus represents the status of a work order
type WorkOrderStatus string

const (
	WorkOrderStatusOpen       WorkOrderStatus = "OPEN"
	WorkOrderStatusInProgress WorkOrderStatus = "IN_PROGRESS"
	WorkOrderStatusDone       WorkOrderStatus = "DONE"
	WorkOrderStatusCancelled  WorkOrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid WorkOrderStatus
func (s WorkOrderStatus) IsValid() bool {
	switch s {
	case WorkOrderStatusOpen, WorkOrderStatusInProgress, WorkOrderStatusDone, WorkOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of WorkOrderStatus
func (s WorkOrderStatus) String() string {
	return string(s)
}

// WorkOrderItem represents a labour or material line on a work order
type WorkOrderItem struct {
	LocalID          uint            `gorm:"primaryKey;autoIncrement" json:"local_id"`
	WorkOrderLocalID uint            `gorm:"not null;index" json:"work_order_local_id"`
	Description      string          `gorm:"size:500;not null" json:"description"`
	Quantity         decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"unit_price"`
	Amount           decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
}

// NewWorkOrderItem creates a new work order line item
func NewWorkOrderItem(description string, quantity, unitPrice decimal.Decimal) (*WorkOrderItem, error) {
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Item description cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &WorkOrderItem{
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Amount:      quantity.Mul(unitPrice).Round(4),
	}, nil
}

// WorkOrder represents a field/service work order in the offline cache
type WorkOrder struct {
	SyncMeta
	WorkOrderNumber string          `gorm:"size:50;not null" json:"work_order_number"`
	CustomerID      uuid.UUID       `gorm:"type:uuid;not null" json:"customer_id"`
	CustomerName    string          `gorm:"size:200;not null" json:"customer_name"`
	Status          WorkOrderStatus `gorm:"size:20;not null;default:'OPEN'" json:"status"`
	Description     string          `gorm:"size:1000" json:"description"`
	ScheduledFor    *time.Time      `json:"scheduled_for,omitempty"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"total_amount"`
	Items           []WorkOrderItem `gorm:"foreignKey:WorkOrderLocalID;references:LocalID;constraint:OnDelete:CASCADE" json:"items"`
}

// NewWorkOrder creates a new locally pending work order
func NewWorkOrder(workOrderNumber string, customerID uuid.UUID, customerName string) (*WorkOrder, error) {
	if workOrderNumber == "" {
		return nil, shared.NewDomainError("INVALID_WORK_ORDER_NUMBER", "Work order number cannot be empty")
	}
	if len(workOrderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_WORK_ORDER_NUMBER", "Work order number cannot exceed 50 characters")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}

	return &WorkOrder{
		SyncMeta:        NewSyncMeta(),
		WorkOrderNumber: workOrderNumber,
		CustomerID:      customerID,
		CustomerName:    customerName,
		Status:          WorkOrderStatusOpen,
		TotalAmount:     decimal.Zero,
		Items:           make([]WorkOrderItem, 0),
	}, nil
}

// ReplaceItems swaps the full line item set and flags the work order for
// push
func (w *WorkOrder) ReplaceItems(items []WorkOrderItem) {
	w.Items = make([]WorkOrderItem, len(items))
	copy(w.Items, items)
	for i := range w.Items {
		w.Items[i].LocalID = 0
		w.Items[i].WorkOrderLocalID = w.LocalID
	}
	w.recalculateTotal()
	w.MarkPending()
}

// SetStatus updates the work order status and flags it for push
func (w *WorkOrder) SetStatus(status WorkOrderStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown work order status")
	}
	w.Status = status
	w.MarkPending()
	return nil
}

// SetDescription sets the work description and flags the order for push
func (w *WorkOrder) SetDescription(description string) {
	w.Description = description
	w.MarkPending()
}

// SetScheduledFor sets the scheduled date and flags the order for push
func (w *WorkOrder) SetScheduledFor(t time.Time) {
	w.ScheduledFor = &t
	w.MarkPending()
}

// ItemCount returns the number of line items on the work order
func (w *WorkOrder) ItemCount() int {
	return len(w.Items)
}

func (w *WorkOrder) recalculateTotal() {
	total := decimal.Zero
	for _, item := range w.Items {
		total = total.Add(item.Amount)
	}
	w.TotalAmount = total
}
