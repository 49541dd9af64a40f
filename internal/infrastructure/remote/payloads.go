package remote

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/erp/companion/internal/domain/record"
	syncdomain "github.com/erp/companion/internal/domain/sync"
)

// Wire shapes for the backend API. Field names follow the remote
// contract (camelCase, line items nested under a per-type *Items key, a
// tenant identifier injected into every document payload).

type salesOrderItemPayload struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	ProductCode string          `json:"productCode,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

type salesOrderPayload struct {
	ID              string                  `json:"id,omitempty"`
	TenantID        string                  `json:"tenantId"`
	OrderNumber     string                  `json:"orderNumber"`
	CustomerID      string                  `json:"customerId"`
	CustomerName    string                  `json:"customerName"`
	Status          string                  `json:"status"`
	TotalAmount     decimal.Decimal         `json:"totalAmount"`
	Remark          string                  `json:"remark,omitempty"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       *time.Time              `json:"updatedAt,omitempty"`
	SalesOrderItems []salesOrderItemPayload `json:"salesOrderItems"`
}

func newSalesOrderPayload(order *record.SalesOrder, tenantID uuid.UUID) salesOrderPayload {
	items := make([]salesOrderItemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, salesOrderItemPayload{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	return salesOrderPayload{
		TenantID:        tenantID.String(),
		OrderNumber:     order.OrderNumber,
		CustomerID:      order.CustomerID.String(),
		CustomerName:    order.CustomerName,
		Status:          order.Status.String(),
		TotalAmount:     order.TotalAmount,
		Remark:          order.Remark,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
		SalesOrderItems: items,
	}
}

func (p salesOrderPayload) toRecord() (record.SalesOrder, error) {
	serverID, err := uuid.Parse(p.ID)
	if err != nil {
		return record.SalesOrder{}, fmt.Errorf("%w: invalid sales order id %q", syncdomain.ErrDecode, p.ID)
	}
	customerID, err := uuid.Parse(p.CustomerID)
	if err != nil {
		return record.SalesOrder{}, fmt.Errorf("%w: invalid customer id %q", syncdomain.ErrDecode, p.CustomerID)
	}
	status := record.OrderStatus(p.Status)
	if !status.IsValid() {
		return record.SalesOrder{}, fmt.Errorf("%w: unknown order status %q", syncdomain.ErrDecode, p.Status)
	}

	items := make([]record.SalesOrderItem, 0, len(p.SalesOrderItems))
	for _, item := range p.SalesOrderItems {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return record.SalesOrder{}, fmt.Errorf("%w: invalid product id %q", syncdomain.ErrDecode, item.ProductID)
		}
		items = append(items, record.SalesOrderItem{
			ProductID:   productID,
			ProductName: item.ProductName,
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	meta := record.NewSyncedMeta(serverID)
	if !p.CreatedAt.IsZero() {
		meta.CreatedAt = p.CreatedAt
	}
	meta.UpdatedAt = p.UpdatedAt

	return record.SalesOrder{
		SyncMeta:     meta,
		OrderNumber:  p.OrderNumber,
		CustomerID:   customerID,
		CustomerName: p.CustomerName,
		Status:       status,
		TotalAmount:  p.TotalAmount,
		Remark:       p.Remark,
		Items:        items,
	}, nil
}

type quoteItemPayload struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	ProductCode string          `json:"productCode,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

type quotePayload struct {
	ID           string             `json:"id,omitempty"`
	TenantID     string             `json:"tenantId"`
	QuoteNumber  string             `json:"quoteNumber"`
	CustomerID   string             `json:"customerId"`
	CustomerName string             `json:"customerName"`
	Status       string             `json:"status"`
	ValidUntil   *time.Time         `json:"validUntil,omitempty"`
	TotalAmount  decimal.Decimal    `json:"totalAmount"`
	Remark       string             `json:"remark,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    *time.Time         `json:"updatedAt,omitempty"`
	QuoteItems   []quoteItemPayload `json:"quoteItems"`
}

func newQuotePayload(quote *record.Quote, tenantID uuid.UUID) quotePayload {
	items := make([]quoteItemPayload, 0, len(quote.Items))
	for _, item := range quote.Items {
		items = append(items, quoteItemPayload{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	return quotePayload{
		TenantID:     tenantID.String(),
		QuoteNumber:  quote.QuoteNumber,
		CustomerID:   quote.CustomerID.String(),
		CustomerName: quote.CustomerName,
		Status:       quote.Status.String(),
		ValidUntil:   quote.ValidUntil,
		TotalAmount:  quote.TotalAmount,
		Remark:       quote.Remark,
		CreatedAt:    quote.CreatedAt,
		UpdatedAt:    quote.UpdatedAt,
		QuoteItems:   items,
	}
}

func (p quotePayload) toRecord() (record.Quote, error) {
	serverID, err := uuid.Parse(p.ID)
	if err != nil {
		return record.Quote{}, fmt.Errorf("%w: invalid quote id %q", syncdomain.ErrDecode, p.ID)
	}
	customerID, err := uuid.Parse(p.CustomerID)
	if err != nil {
		return record.Quote{}, fmt.Errorf("%w: invalid customer id %q", syncdomain.ErrDecode, p.CustomerID)
	}
	status := record.QuoteStatus(p.Status)
	if !status.IsValid() {
		return record.Quote{}, fmt.Errorf("%w: unknown quote status %q", syncdomain.ErrDecode, p.Status)
	}

	items := make([]record.QuoteItem, 0, len(p.QuoteItems))
	for _, item := range p.QuoteItems {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return record.Quote{}, fmt.Errorf("%w: invalid product id %q", syncdomain.ErrDecode, item.ProductID)
		}
		items = append(items, record.QuoteItem{
			ProductID:   productID,
			ProductName: item.ProductName,
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	meta := record.NewSyncedMeta(serverID)
	if !p.CreatedAt.IsZero() {
		meta.CreatedAt = p.CreatedAt
	}
	meta.UpdatedAt = p.UpdatedAt

	return record.Quote{
		SyncMeta:     meta,
		QuoteNumber:  p.QuoteNumber,
		CustomerID:   customerID,
		CustomerName: p.CustomerName,
		Status:       status,
		ValidUntil:   p.ValidUntil,
		TotalAmount:  p.TotalAmount,
		Remark:       p.Remark,
		Items:        items,
	}, nil
}

type workOrderItemPayload struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

type workOrderPayload struct {
	ID              string                 `json:"id,omitempty"`
	TenantID        string                 `json:"tenantId"`
	WorkOrderNumber string                 `json:"workOrderNumber"`
	CustomerID      string                 `json:"customerId"`
	CustomerName    string                 `json:"customerName"`
	Status          string                 `json:"status"`
	Description     string                 `json:"description,omitempty"`
	ScheduledFor    *time.Time             `json:"scheduledFor,omitempty"`
	TotalAmount     decimal.Decimal        `json:"totalAmount"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       *time.Time             `json:"updatedAt,omitempty"`
	WorkOrderItems  []workOrderItemPayload `json:"workOrderItems"`
}

func newWorkOrderPayload(workOrder *record.WorkOrder, tenantID uuid.UUID) workOrderPayload {
	items := make([]workOrderItemPayload, 0, len(workOrder.Items))
	for _, item := range workOrder.Items {
		items = append(items, workOrderItemPayload{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	return workOrderPayload{
		TenantID:        tenantID.String(),
		WorkOrderNumber: workOrder.WorkOrderNumber,
		CustomerID:      workOrder.CustomerID.String(),
		CustomerName:    workOrder.CustomerName,
		Status:          workOrder.Status.String(),
		Description:     workOrder.Description,
		ScheduledFor:    workOrder.ScheduledFor,
		TotalAmount:     workOrder.TotalAmount,
		CreatedAt:       workOrder.CreatedAt,
		UpdatedAt:       workOrder.UpdatedAt,
		WorkOrderItems:  items,
	}
}

func (p workOrderPayload) toRecord() (record.WorkOrder, error) {
	serverID, err := uuid.Parse(p.ID)
	if err != nil {
		return record.WorkOrder{}, fmt.Errorf("%w: invalid work order id %q", syncdomain.ErrDecode, p.ID)
	}
	customerID, err := uuid.Parse(p.CustomerID)
	if err != nil {
		return record.WorkOrder{}, fmt.Errorf("%w: invalid customer id %q", syncdomain.ErrDecode, p.CustomerID)
	}
	status := record.WorkOrderStatus(p.Status)
	if !status.IsValid() {
		return record.WorkOrder{}, fmt.Errorf("%w: unknown work order status %q", syncdomain.ErrDecode, p.Status)
	}

	items := make([]record.WorkOrderItem, 0, len(p.WorkOrderItems))
	for _, item := range p.WorkOrderItems {
		items = append(items, record.WorkOrderItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	meta := record.NewSyncedMeta(serverID)
	if !p.CreatedAt.IsZero() {
		meta.CreatedAt = p.CreatedAt
	}
	meta.UpdatedAt = p.UpdatedAt

	return record.WorkOrder{
		SyncMeta:        meta,
		WorkOrderNumber: p.WorkOrderNumber,
		CustomerID:      customerID,
		CustomerName:    p.CustomerName,
		Status:          status,
		Description:     p.Description,
		ScheduledFor:    p.ScheduledFor,
		TotalAmount:     p.TotalAmount,
		Items:           items,
	}, nil
}

type customerPayload struct {
	ID      string `json:"id"`
	Code    string `json:"code,omitempty"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

func (p customerPayload) toRecord() (record.Customer, error) {
	serverID, err := uuid.Parse(p.ID)
	if err != nil {
		return record.Customer{}, fmt.Errorf("%w: invalid customer id %q", syncdomain.ErrDecode, p.ID)
	}
	return record.Customer{
		SyncMeta: record.NewSyncedMeta(serverID),
		Code:     p.Code,
		Name:     p.Name,
		Phone:    p.Phone,
		Email:    p.Email,
		Address:  p.Address,
	}, nil
}

type stockItemPayload struct {
	ID             string          `json:"id"`
	Code           string          `json:"code,omitempty"`
	Name           string          `json:"name"`
	Unit           string          `json:"unit,omitempty"`
	SalesPrice     decimal.Decimal `json:"salesPrice"`
	QuantityOnHand decimal.Decimal `json:"quantityOnHand"`
}

func (p stockItemPayload) toRecord() (record.StockItem, error) {
	serverID, err := uuid.Parse(p.ID)
	if err != nil {
		return record.StockItem{}, fmt.Errorf("%w: invalid stock item id %q", syncdomain.ErrDecode, p.ID)
	}
	return record.StockItem{
		SyncMeta:       record.NewSyncedMeta(serverID),
		Code:           p.Code,
		Name:           p.Name,
		Unit:           p.Unit,
		SalesPrice:     p.SalesPrice,
		QuantityOnHand: p.QuantityOnHand,
	}, nil
}
