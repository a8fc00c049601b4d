package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/services"
)

// fakeOrderService records calls and returns canned results.
type fakeOrderService struct {
	listResult *services.OrderListResult
	order      *services.OrderView
	err        *services.ServiceError
	csvBody    string

	lastPage   int
	lastLimit  int
	lastID     string
	lastStatus string
}

func (f *fakeOrderService) ListOrders(_ context.Context, page, limit int) (*services.OrderListResult, *services.ServiceError) {
	f.lastPage, f.lastLimit = page, limit
	return f.listResult, f.err
}
func (f *fakeOrderService) GetOrder(_ context.Context, id string) (*services.OrderView, *services.ServiceError) {
	f.lastID = id
	return f.order, f.err
}
func (f *fakeOrderService) CreateOrder(_ context.Context, req *services.CreateOrderRequest) (*services.OrderView, *services.ServiceError) {
	return f.order, f.err
}
func (f *fakeOrderService) UpdateOrder(_ context.Context, id string, req *services.UpdateOrderRequest) *services.ServiceError {
	f.lastID = id
	return f.err
}
func (f *fakeOrderService) UpdateStatus(_ context.Context, id, status string) *services.ServiceError {
	f.lastID, f.lastStatus = id, status
	return f.err
}
func (f *fakeOrderService) DeleteOrder(_ context.Context, id string) *services.ServiceError {
	f.lastID = id
	return f.err
}
func (f *fakeOrderService) ExportCSV(_ context.Context, w io.Writer) *services.ServiceError {
	if f.err != nil {
		return f.err
	}
	_, _ = io.WriteString(w, f.csvBody)
	return nil
}

func newOrderRouter(svc services.OrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	oc := NewOrderController(svc)
	r := gin.New()
	r.GET("/orders", oc.GetOrders)
	r.GET("/orders/export", oc.ExportOrders)
	r.GET("/orders/:id", oc.GetOrderByID)
	r.POST("/orders", oc.CreateOrder)
	r.PATCH("/orders/:id/status", oc.UpdateOrderStatus)
	return r
}

func TestGetOrders_PaginationDefaultsAndCap(t *testing.T) {
	svc := &fakeOrderService{listResult: &services.OrderListResult{}}
	r := newOrderRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.lastPage)
	assert.Equal(t, 10, svc.lastLimit)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders?page=3&limit=500", nil))
	assert.Equal(t, 3, svc.lastPage)
	assert.Equal(t, 100, svc.lastLimit)
}

func TestGetOrderByID_NotFound(t *testing.T) {
	svc := &fakeOrderService{err: &services.ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}}
	r := newOrderRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/abc123", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "abc123", svc.lastID)
	assert.Contains(t, w.Body.String(), "Order not found")
}

func TestCreateOrder_ValidRequest(t *testing.T) {
	svc := &fakeOrderService{order: &services.OrderView{ID: "665f1c0a", TotalDisplay: "RM 50.00"}}
	r := newOrderRouter(svc)

	body, _ := json.Marshal(gin.H{
		"customerName": "Aisyah Rahman",
		"phone":        "012-3456789",
		"products": []gin.H{
			{"productId": "AG25", "name": "Emerald Turf", "quantity": 2, "unitPrice": 25.0},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "RM 50.00")
}

func TestCreateOrder_MissingProducts(t *testing.T) {
	r := newOrderRouter(&fakeOrderService{})

	body, _ := json.Marshal(gin.H{"customerName": "Aisyah Rahman", "phone": "012-3456789"})
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	svc := &fakeOrderService{}
	r := newOrderRouter(svc)

	body, _ := json.Marshal(gin.H{"status": "Shipped"})
	req := httptest.NewRequest(http.MethodPatch, "/orders/665f1c0a/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "665f1c0a", svc.lastID)
	assert.Equal(t, "Shipped", svc.lastStatus)
}

func TestUpdateOrderStatus_MissingStatus(t *testing.T) {
	r := newOrderRouter(&fakeOrderService{})

	req := httptest.NewRequest(http.MethodPatch, "/orders/665f1c0a/status", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportOrders_SetsDownloadHeaders(t *testing.T) {
	svc := &fakeOrderService{csvBody: "ID,Customer\n1,Lim Wei Jie\n"}
	r := newOrderRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/export", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), "Lim Wei Jie")
}
