package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	cacheapp "github.com/erp/companion/internal/application/cache"
	"github.com/erp/companion/internal/domain/record"
	"github.com/erp/companion/internal/infrastructure/localstore"
	"github.com/erp/companion/internal/interfaces/http/dto"
)

func setupSalesOrderRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&record.SalesOrder{}, &record.SalesOrderItem{}))

	service := cacheapp.NewSalesOrderService(localstore.NewGormSalesOrderRepository(db))
	handler := NewSalesOrderHandler(service)

	engine := gin.New()
	handler.RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func performJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	return recorder
}

func decodeResponse(t *testing.T, recorder *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	return resp
}

func createOrderRequest(number string) cacheapp.CreateSalesOrderRequest {
	return cacheapp.CreateSalesOrderRequest{
		OrderNumber:  number,
		CustomerID:   uuid.New(),
		CustomerName: "Acme Trading",
		Items: []cacheapp.LineItemInput{{
			ProductID:   uuid.New(),
			ProductName: "Widget",
			ProductCode: "W-001",
			Quantity:    mustDecimal("2"),
			UnitPrice:   mustDecimal("9.50"),
		}},
		Remark: "created offline",
	}
}

func TestSalesOrderHandler_Create(t *testing.T) {
	t.Run("creates a pending order", func(t *testing.T) {
		engine := setupSalesOrderRouter(t)

		recorder := performJSON(t, engine, http.MethodPost, "/api/v1/sales-orders", createOrderRequest("SO-001"))
		require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

		resp := decodeResponse(t, recorder)
		assert.True(t, resp.Success)

		var order cacheapp.SalesOrderResponse
		remarshal(t, resp.Data, &order)
		assert.NotZero(t, order.LocalID)
		assert.Nil(t, order.ServerID)
		assert.Equal(t, "PENDING", order.SyncStatus)
		assert.Equal(t, "DRAFT", order.Status)
		assert.Equal(t, "19", order.TotalAmount.String())
	})

	t.Run("rejects a body that fails binding", func(t *testing.T) {
		engine := setupSalesOrderRouter(t)

		recorder := performJSON(t, engine, http.MethodPost, "/api/v1/sales-orders",
			map[string]any{"customer_name": "Acme"})
		require.Equal(t, http.StatusBadRequest, recorder.Code)

		resp := decodeResponse(t, recorder)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
	})
}

func TestSalesOrderHandler_GetAndList(t *testing.T) {
	engine := setupSalesOrderRouter(t)

	created := decodeResponse(t,
		performJSON(t, engine, http.MethodPost, "/api/v1/sales-orders", createOrderRequest("SO-001")))
	var order cacheapp.SalesOrderResponse
	remarshal(t, created.Data, &order)

	t.Run("get by local id", func(t *testing.T) {
		recorder := performJSON(t, engine, http.MethodGet,
			fmt.Sprintf("/api/v1/sales-orders/%d", order.LocalID), nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var got cacheapp.SalesOrderResponse
		remarshal(t, decodeResponse(t, recorder).Data, &got)
		assert.Equal(t, "SO-001", got.OrderNumber)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "Widget", got.Items[0].ProductName)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		recorder := performJSON(t, engine, http.MethodGet, "/api/v1/sales-orders/9999", nil)
		require.Equal(t, http.StatusNotFound, recorder.Code)
		resp := decodeResponse(t, recorder)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
	})

	t.Run("non-numeric id is a bad request", func(t *testing.T) {
		recorder := performJSON(t, engine, http.MethodGet, "/api/v1/sales-orders/abc", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("list returns the cached orders", func(t *testing.T) {
		recorder := performJSON(t, engine, http.MethodGet, "/api/v1/sales-orders", nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var list []cacheapp.SalesOrderResponse
		remarshal(t, decodeResponse(t, recorder).Data, &list)
		assert.Len(t, list, 1)
	})
}

func TestSalesOrderHandler_Update(t *testing.T) {
	engine := setupSalesOrderRouter(t)

	created := decodeResponse(t,
		performJSON(t, engine, http.MethodPost, "/api/v1/sales-orders", createOrderRequest("SO-001")))
	var order cacheapp.SalesOrderResponse
	remarshal(t, created.Data, &order)

	t.Run("partial update keeps untouched fields", func(t *testing.T) {
		status := "CONFIRMED"
		recorder := performJSON(t, engine, http.MethodPut,
			fmt.Sprintf("/api/v1/sales-orders/%d", order.LocalID),
			cacheapp.UpdateSalesOrderRequest{Status: &status})
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

		var updated cacheapp.SalesOrderResponse
		remarshal(t, decodeResponse(t, recorder).Data, &updated)
		assert.Equal(t, "CONFIRMED", updated.Status)
		assert.Equal(t, "created offline", updated.Remark)
		assert.Len(t, updated.Items, 1)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		status := "SHIPPED"
		recorder := performJSON(t, engine, http.MethodPut,
			fmt.Sprintf("/api/v1/sales-orders/%d", order.LocalID),
			cacheapp.UpdateSalesOrderRequest{Status: &status})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestSalesOrderHandler_Delete(t *testing.T) {
	engine := setupSalesOrderRouter(t)

	created := decodeResponse(t,
		performJSON(t, engine, http.MethodPost, "/api/v1/sales-orders", createOrderRequest("SO-001")))
	var order cacheapp.SalesOrderResponse
	remarshal(t, created.Data, &order)

	recorder := performJSON(t, engine, http.MethodDelete,
		fmt.Sprintf("/api/v1/sales-orders/%d", order.LocalID), nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = performJSON(t, engine, http.MethodGet,
		fmt.Sprintf("/api/v1/sales-orders/%d", order.LocalID), nil)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
