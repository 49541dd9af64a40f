package record

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/erp/companion/internal/domain/shared"
)

// QuoteStatus represents the status of a quote
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "DRAFT"
	QuoteStatusSent     QuoteStatus = "SENT"
	QuoteStatusAccepted QuoteStatus = "ACCEPTED"
	QuoteStatusRejected QuoteStatus = "REJECTED"
	QuoteStatusExpired  QuoteStatus = "EXPIRED"
)

// IsValid checks if the status is a valid QuoteStatus
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}

// String returns the string representation of QuoteStatus
func (s QuoteStatus) String() string {
	return string(s)
}

// QuoteItem represents a line item in a locally cached quote
type QuoteItem struct {
	LocalID      uint            `gorm:"primaryKey;autoIncrement" json:"local_id"`
	QuoteLocalID uint            `gorm:"not null;index" json:"quote_local_id"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	ProductName  string          `gorm:"size:200;not null" json:"product_name"`
	ProductCode  string          `gorm:"size:50" json:"product_code"`
	Quantity     decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"quantity"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"unit_price"`
	Amount       decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
}

// NewQuoteItem creates a new quote line item
func NewQuoteItem(productID uuid.UUID, productName, productCode string, quantity, unitPrice decimal.Decimal) (*QuoteItem, error) {
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

	return &QuoteItem{
		ProductID:   productID,
		ProductName: productName,
		ProductCode: productCode,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Amount:      quantity.Mul(unitPrice).Round(4),
	}, nil
}

// Quote represents a sales quotation in the offline cache
type Quote struct {
	SyncMeta
	QuoteNumber  string          `gorm:"size:50;not null" json:"quote_number"`
	CustomerID   uuid.UUID       `gorm:"type:uuid;not null" json:"customer_id"`
	CustomerName string          `gorm:"size:200;not null" json:"customer_name"`
	Status       QuoteStatus     `gorm:"size:20;not null;default:'DRAFT'" json:"status"`
	ValidUntil   *time.Time      `json:"valid_until,omitempty"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"total_amount"`
	Remark       string          `gorm:"size:500" json:"remark"`
	Items        []QuoteItem     `gorm:"foreignKey:QuoteLocalID;references:LocalID;constraint:OnDelete:CASCADE" json:"items"`
}

// NewQuote creates a new locally pending quote
func NewQuote(quoteNumber string, customerID uuid.UUID, customerName string) (*Quote, error) {
	if quoteNumber == "" {
		return nil, shared.NewDomainError("INVALID_QUOTE_NUMBER", "Quote number cannot be empty")
	}
	if len(quoteNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_QUOTE_NUMBER", "Quote number cannot exceed 50 characters")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}

	return &Quote{
		SyncMeta:     NewSyncMeta(),
		QuoteNumber:  quoteNumber,
		CustomerID:   customerID,
		CustomerName: customerName,
		Status:       QuoteStatusDraft,
		TotalAmount:  decimal.Zero,
		Items:        make([]QuoteItem, 0),
	}, nil
}

// ReplaceItems swaps the full line item set and flags the quote for push
func (q *Quote) ReplaceItems(items []QuoteItem) {
	q.Items = make([]QuoteItem, len(items))
	copy(q.Items, items)
	for i := range q.Items {
		q.Items[i].LocalID = 0
		q.Items[i].QuoteLocalID = q.LocalID
	}
	q.recalculateTotal()
	q.MarkPending()
}

// SetStatus updates the quote status and flags the quote for push
func (q *Quote) SetStatus(status QuoteStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown quote status")
	}
	q.Status = status
	q.MarkPending()
	return nil
}

// SetValidUntil sets the expiry date and flags the quote for push
func (q *Quote) SetValidUntil(t time.Time) {
	q.ValidUntil = &t
	q.MarkPending()
}

// SetRemark sets the quote remark and flags the quote for push
func (q *Quote) SetRemark(remark string) {
	q.Remark = remark
	q.MarkPending()
}

// ItemCount returns the number of line items on the quote
func (q *Quote) ItemCount() int {
	return len(q.Items)
}

func (q *Quote) recalculateTotal() {
	total := decimal.Zero
	for _, item := range q.Items {
		total = total.Add(item.Amount)
	}
	q.TotalAmount = total
}
