package cache

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/erp/companion/internal/domain/record"
)

// ==================== Sales Order DTOs ====================

// CreateSalesOrderRequest represents a request to create a sales order in
// the local cache
type CreateSalesOrderRequest struct {
	OrderNumber  string          `json:"order_number" binding:"required,min=1,max=50"`
	CustomerID   uuid.UUID       `json:"customer_id" binding:"required"`
	CustomerName string          `json:"customer_name" binding:"required,min=1,max=200"`
	Items        []LineItemInput `json:"items"`
	Remark       string          `json:"remark"`
}

// LineItemInput represents a product line in a create or update request
type LineItemInput struct {
	ProductID   uuid.UUID       `json:"product_id" binding:"required"`
	ProductName string          `json:"product_name" binding:"required,min=1,max=200"`
	ProductCode string          `json:"product_code"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}

// UpdateSalesOrderRequest represents a request to edit a cached sales
// order. Nil fields are left unchanged; a non-nil Items slice replaces
// the full line item set.
type UpdateSalesOrderRequest struct {
	Status *string          `json:"status"`
	Remark *string          `json:"remark"`
	Items  *[]LineItemInput `json:"items"`
}

// LineItemResponse represents a product line in API responses
type LineItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductCode string          `json:"product_code"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// SalesOrderResponse represents a cached sales order in API responses
type SalesOrderResponse struct {
	LocalID      uint               `json:"local_id"`
	ServerID     *uuid.UUID         `json:"server_id,omitempty"`
	SyncStatus   string             `json:"sync_status"`
	OrderNumber  string             `json:"order_number"`
	CustomerID   uuid.UUID          `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	Status       string             `json:"status"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	Remark       string             `json:"remark"`
	Items        []LineItemResponse `json:"items"`
	ItemCount    int                `json:"item_count"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    *time.Time         `json:"updated_at,omitempty"`
}

// ToSalesOrderResponse converts a cached sales order to its response
// shape
func ToSalesOrderResponse(order *record.SalesOrder) SalesOrderResponse {
	items := make([]LineItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, LineItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	return SalesOrderResponse{
		LocalID:      order.LocalID,
		ServerID:     order.ServerID,
		SyncStatus:   order.SyncStatus.String(),
		OrderNumber:  order.OrderNumber,
		CustomerID:   order.CustomerID,
		CustomerName: order.CustomerName,
		Status:       order.Status.String(),
		TotalAmount:  order.TotalAmount,
		Remark:       order.Remark,
		Items:        items,
		ItemCount:    order.ItemCount(),
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

// ==================== Quote DTOs ====================

// CreateQuoteRequest represents a request to create a quote in the local
// cache
type CreateQuoteRequest struct {
	QuoteNumber  string          `json:"quote_number" binding:"required,min=1,max=50"`
	CustomerID   uuid.UUID       `json:"customer_id" binding:"required"`
	CustomerName string          `json:"customer_name" binding:"required,min=1,max=200"`
	ValidUntil   *time.Time      `json:"valid_until"`
	Items        []LineItemInput `json:"items"`
	Remark       string          `json:"remark"`
}

// UpdateQuoteRequest represents a request to edit a cached quote
type UpdateQuoteRequest struct {
	Status     *string          `json:"status"`
	ValidUntil *time.Time       `json:"valid_until"`
	Remark     *string          `json:"remark"`
	Items      *[]LineItemInput `json:"items"`
}

// QuoteResponse represents a cached quote in API responses
type QuoteResponse struct {
	LocalID      uint               `json:"local_id"`
	ServerID     *uuid.UUID         `json:"server_id,omitempty"`
	SyncStatus   string             `json:"sync_status"`
	QuoteNumber  string             `json:"quote_number"`
	CustomerID   uuid.UUID          `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	Status       string             `json:"status"`
	ValidUntil   *time.Time         `json:"valid_until,omitempty"`
	TotalAmount  decimal.Decimal    `json:"total_amount"`
	Remark       string             `json:"remark"`
	Items        []LineItemResponse `json:"items"`
	ItemCount    int                `json:"item_count"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    *time.Time         `json:"updated_at,omitempty"`
}

// ToQuoteResponse converts a cached quote to its response shape
func ToQuoteResponse(quote *record.Quote) QuoteResponse {
	items := make([]LineItemResponse, 0, len(quote.Items))
	for _, item := range quote.Items {
		items = append(items, LineItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ProductCode: item.ProductCode,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	return QuoteResponse{
		LocalID:      quote.LocalID,
		ServerID:     quote.ServerID,
		SyncStatus:   quote.SyncStatus.String(),
		QuoteNumber:  quote.QuoteNumber,
		CustomerID:   quote.CustomerID,
		CustomerName: quote.CustomerName,
		Status:       quote.Status.String(),
		ValidUntil:   quote.ValidUntil,
		TotalAmount:  quote.TotalAmount,
		Remark:       quote.Remark,
		Items:        items,
		ItemCount:    quote.ItemCount(),
		CreatedAt:    quote.CreatedAt,
		UpdatedAt:    quote.UpdatedAt,
	}
}

// ==================== Work Order DTOs ====================

// WorkItemInput represents a labour or material line in a create or
// update request
type WorkItemInput struct {
	Description string          `json:"description" binding:"required,min=1,max=500"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreateWorkOrderRequest represents a request to create a work order in
// the local cache
type CreateWorkOrderRequest struct {
	WorkOrderNumber string          `json:"work_order_number" binding:"required,min=1,max=50"`
	CustomerID      uuid.UUID       `json:"customer_id" binding:"required"`
	CustomerName    string          `json:"customer_name" binding:"required,min=1,max=200"`
	Description     string          `json:"description"`
	ScheduledFor    *time.Time      `json:"scheduled_for"`
	Items           []WorkItemInput `json:"items"`
}

// UpdateWorkOrderRequest represents a request to edit a cached work order
type UpdateWorkOrderRequest struct {
	Status       *string          `json:"status"`
	Description  *string          `json:"description"`
	ScheduledFor *time.Time       `json:"scheduled_for"`
	Items        *[]WorkItemInput `json:"items"`
}

// WorkItemResponse represents a work order line in API responses
type WorkItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// WorkOrderResponse represents a cached work order in API responses
type WorkOrderResponse struct {
	LocalID         uint               `json:"local_id"`
	ServerID        *uuid.UUID         `json:"server_id,omitempty"`
	SyncStatus      string             `json:"sync_status"`
	WorkOrderNumber string             `json:"work_order_number"`
	CustomerID      uuid.UUID          `json:"customer_id"`
	CustomerName    string             `json:"customer_name"`
	Status          string             `json:"status"`
	Description     string             `json:"description"`
	ScheduledFor    *time.Time         `json:"scheduled_for,omitempty"`
	TotalAmount     decimal.Decimal    `json:"total_amount"`
	Items           []WorkItemResponse `json:"items"`
	ItemCount       int                `json:"item_count"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       *time.Time         `json:"updated_at,omitempty"`
}

// ToWorkOrderResponse converts a cached work order to its response shape
func ToWorkOrderResponse(workOrder *record.WorkOrder) WorkOrderResponse {
	items := make([]WorkItemResponse, 0, len(workOrder.Items))
	for _, item := range workOrder.Items {
		items = append(items, WorkItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		})
	}

	return WorkOrderResponse{
		LocalID:         workOrder.LocalID,
		ServerID:        workOrder.ServerID,
		SyncStatus:      workOrder.SyncStatus.String(),
		WorkOrderNumber: workOrder.WorkOrderNumber,
		CustomerID:      workOrder.CustomerID,
		CustomerName:    workOrder.CustomerName,
		Status:          workOrder.Status.String(),
		Description:     workOrder.Description,
		ScheduledFor:    workOrder.ScheduledFor,
		TotalAmount:     workOrder.TotalAmount,
		Items:           items,
		ItemCount:       workOrder.ItemCount(),
		CreatedAt:       workOrder.CreatedAt,
		UpdatedAt:       workOrder.UpdatedAt,
	}
}

// ==================== Reference DTOs ====================

// CustomerResponse represents a cached customer in API responses
type CustomerResponse struct {
	ServerID *uuid.UUID `json:"server_id,omitempty"`
	Code     string     `json:"code"`
	Name     string     `json:"name"`
	Phone    string     `json:"phone"`
	Email    string     `json:"email"`
	Address  string     `json:"address"`
}

// ToCustomerResponse converts a cached customer to its response shape
func ToCustomerResponse(customer *record.Customer) CustomerResponse {
	return CustomerResponse{
		ServerID: customer.ServerID,
		Code:     customer.Code,
		Name:     customer.Name,
		Phone:    customer.Phone,
		Email:    customer.Email,
		Address:  customer.Address,
	}
}

// StockItemResponse represents a cached stock item in API responses
type StockItemResponse struct {
	ServerID       *uuid.UUID      `json:"server_id,omitempty"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Unit           string          `json:"unit"`
	SalesPrice     decimal.Decimal `json:"sales_price"`
	QuantityOnHand decimal.Decimal `json:"quantity_on_hand"`
}

// ToStockItemResponse converts a cached stock item to its response shape
func ToStockItemResponse(item *record.StockItem) StockItemResponse {
	return StockItemResponse{
		ServerID:       item.ServerID,
		Code:           item.Code,
		Name:           item.Name,
		Unit:           item.Unit,
		SalesPrice:     item.SalesPrice,
		QuantityOnHand: item.QuantityOnHand,
	}
}

// ==================== Settings DTOs ====================

// UpdateSettingsRequest represents a request to change the sync settings.
// Nil fields are left unchanged.
type UpdateSettingsRequest struct {
	APIURL       *string `json:"api_url"`
	SyncEnabled  *bool   `json:"sync_enabled"`
	WifiOnlySync *bool   `json:"wifi_only_sync"`
}

// SettingsResponse represents the sync settings in API responses
type SettingsResponse struct {
	APIURL       string     `json:"api_url"`
	SyncEnabled  bool       `json:"sync_enabled"`
	WifiOnlySync bool       `json:"wifi_only_sync"`
	LastSync     *time.Time `json:"last_sync,omitempty"`
}

// ToSettingsResponse converts a settings snapshot to its response shape
func ToSettingsResponse(settings record.Settings) SettingsResponse {
	return SettingsResponse{
		APIURL:       settings.APIURL,
		SyncEnabled:  settings.SyncEnabled,
		WifiOnlySync: settings.WifiOnlySync,
		LastSync:     settings.LastSync,
	}
}
