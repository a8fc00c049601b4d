package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/models"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/normalize"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/repository"
)

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// OrderItemRequest is one line item on a new order. UnitPrice and Quantity
// are folded into a single line-total price at write time; the stored
// document never carries a unit price.
type OrderItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	UnitPrice float64 `json:"unitPrice" binding:"required,min=0"`
	SizeType  string  `json:"sizeType"`
}

type CreateOrderRequest struct {
	CustomerName string                  `json:"customerName" binding:"required"`
	Phone        string                  `json:"phone" binding:"required"`
	Email        string                  `json:"email"`
	Status       string                  `json:"status"`
	Products     []OrderItemRequest      `json:"products" binding:"required,min=1,dive"`
	Shipping     *models.ShippingDetails `json:"shipping"`
}

type UpdateOrderRequest struct {
	CustomerName *string                 `json:"customerName"`
	Phone        *string                 `json:"phone"`
	Email        *string                 `json:"email"`
	Status       *string                 `json:"status"`
	Products     []OrderItemRequest      `json:"products"`
	Shipping     *models.ShippingDetails `json:"shipping"`
}

// ShippingView is the normalized delivery block on an order view.
type ShippingView struct {
	Requested bool    `json:"requested"`
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	Postcode  string  `json:"postcode,omitempty"`
	Cost      float64 `json:"cost"`
}

// OrderView is an order with its line items normalized and totals computed.
type OrderView struct {
	ID              string               `json:"id"`
	CustomerName    string               `json:"customerName"`
	Phone           string               `json:"phone"`
	Email           string               `json:"email"`
	Status          string               `json:"status"`
	Items           []normalize.LineItem `json:"items"`
	Subtotal        float64              `json:"subtotal"`
	SubtotalDisplay string               `json:"subtotalDisplay"`
	Shipping        ShippingView         `json:"shipping"`
	Total           float64              `json:"total"`
	TotalDisplay    string               `json:"totalDisplay"`
	CreatedAt       time.Time            `json:"createdAt"`
}

type OrderListResult struct {
	Orders []OrderView `json:"orders"`
	Meta   struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int   `json:"totalPages"`
	} `json:"meta"`
}

// OrderService defines the business logic interface for orders.
type OrderService interface {
	ListOrders(ctx context.Context, page, limit int) (*OrderListResult, *ServiceError)
	GetOrder(ctx context.Context, id string) (*OrderView, *ServiceError)
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*OrderView, *ServiceError)
	UpdateOrder(ctx context.Context, id string, req *UpdateOrderRequest) *ServiceError
	UpdateStatus(ctx context.Context, id, status string) *ServiceError
	DeleteOrder(ctx context.Context, id string) *ServiceError
	ExportCSV(ctx context.Context, w io.Writer) *ServiceError
}

type orderServiceImpl struct {
	repo    repository.OrderRepository
	catalog CatalogService
	logger  *zap.Logger
}

func NewOrderService(repo repository.OrderRepository, catalog CatalogService, logger *zap.Logger) OrderService {
	return &orderServiceImpl{repo: repo, catalog: catalog, logger: logger}
}

func (s *orderServiceImpl) ListOrders(ctx context.Context, page, limit int) (*OrderListResult, *ServiceError) {
	orders, total, err := s.repo.FindAll(ctx, page, limit)
	if err != nil {
		s.logger.Error("ListOrders failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch orders"}
	}

	lookup := s.catalog.NameLookup(ctx)
	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, BuildOrderView(&order, lookup))
	}

	result := &OrderListResult{Orders: views}
	result.Meta.Page = page
	result.Meta.Limit = limit
	result.Meta.Total = total
	result.Meta.TotalPages = int((total + int64(limit) - 1) / int64(limit))
	return result, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, id string) (*OrderView, *ServiceError) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid order ID format"}
	}

	order, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}
		}
		s.logger.Error("GetOrder failed", zap.Error(err), zap.String("id", id))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch order"}
	}

	view := BuildOrderView(order, s.catalog.NameLookup(ctx))
	return &view, nil
}

func (s *orderServiceImpl) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*OrderView, *ServiceError) {
	order := &models.Order{
		CustomerName: strings.TrimSpace(req.CustomerName),
		Phone:        strings.TrimSpace(req.Phone),
		Email:        strings.TrimSpace(req.Email),
		Status:       req.Status,
		Products:     canonicalProducts(req.Products),
		CreatedAt:    time.Now().UTC(),
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	if req.Shipping != nil {
		order.Shipping = bson.M{
			"requestShipping": req.Shipping.RequestShipping,
			"address":         req.Shipping.Address,
			"city":            req.Shipping.City,
			"state":           req.Shipping.State,
			"postcode":        req.Shipping.Postcode,
			"cost":            req.Shipping.Cost,
		}
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error("CreateOrder failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create order"}
	}

	view := BuildOrderView(order, s.catalog.NameLookup(ctx))
	return &view, nil
}

func (s *orderServiceImpl) UpdateOrder(ctx context.Context, id string, req *UpdateOrderRequest) *ServiceError {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid order ID format"}
	}

	updates := bson.M{}
	if req.CustomerName != nil {
		updates["customerName"] = strings.TrimSpace(*req.CustomerName)
	}
	if req.Phone != nil {
		updates["phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		updates["email"] = strings.TrimSpace(*req.Email)
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Products != nil {
		updates["products"] = canonicalProducts(req.Products)
	}
	if req.Shipping != nil {
		updates["shipping"] = bson.M{
			"requestShipping": req.Shipping.RequestShipping,
			"address":         req.Shipping.Address,
			"city":            req.Shipping.City,
			"state":           req.Shipping.State,
			"postcode":        req.Shipping.Postcode,
			"cost":            req.Shipping.Cost,
		}
	}
	if len(updates) == 0 {
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Nothing to update"}
	}

	matched, err := s.repo.Update(ctx, oid, updates)
	if err != nil {
		s.logger.Error("UpdateOrder failed", zap.Error(err), zap.String("id", id))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to update order"}
	}
	if matched == 0 {
		return &ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}
	}
	return nil
}

func (s *orderServiceImpl) UpdateStatus(ctx context.Context, id, status string) *ServiceError {
	if strings.TrimSpace(status) == "" {
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Status is required"}
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid order ID format"}
	}

	matched, err := s.repo.Update(ctx, oid, bson.M{"status": status})
	if err != nil {
		s.logger.Error("UpdateStatus failed", zap.Error(err), zap.String("id", id))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to update order status"}
	}
	if matched == 0 {
		return &ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}
	}
	return nil
}

func (s *orderServiceImpl) DeleteOrder(ctx context.Context, id string) *ServiceError {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return &ServiceError{StatusCode: http.StatusBadRequest, Message: "Invalid order ID format"}
	}

	deleted, err := s.repo.Delete(ctx, oid)
	if err != nil {
		s.logger.Error("DeleteOrder failed", zap.Error(err), zap.String("id", id))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to delete order"}
	}
	if deleted == 0 {
		return &ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}
	}
	return nil
}

// ExportCSV streams the full order list as CSV, one row per order.
func (s *orderServiceImpl) ExportCSV(ctx context.Context, w io.Writer) *ServiceError {
	orders, err := s.repo.All(ctx)
	if err != nil {
		s.logger.Error("ExportCSV failed", zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to export orders"}
	}

	lookup := s.catalog.NameLookup(ctx)
	writer := csv.NewWriter(w)
	_ = writer.Write([]string{"ID", "Customer", "Phone", "Email", "Status", "Items", "Subtotal", "Shipping", "Total", "Created At"})

	for _, order := range orders {
		view := BuildOrderView(&order, lookup)

		itemParts := make([]string, 0, len(view.Items))
		for _, it := range view.Items {
			itemParts = append(itemParts, fmt.Sprintf("%s x%d", it.Name, it.Quantity))
		}

		_ = writer.Write([]string{
			view.ID,
			view.CustomerName,
			view.Phone,
			view.Email,
			view.Status,
			strings.Join(itemParts, "; "),
			normalize.FormatRM(view.Subtotal),
			normalize.FormatRM(view.Shipping.Cost),
			view.TotalDisplay,
			view.CreatedAt.Format(time.RFC3339),
		})
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		s.logger.Error("ExportCSV write failed", zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to write CSV"}
	}
	return nil
}

// BuildOrderView normalizes an order's products and computes its totals.
func BuildOrderView(order *models.Order, lookup map[string]string) OrderView {
	items := normalize.Items(order.Products, lookup)
	subtotal := normalize.Subtotal(items)

	shipping := map[string]any(order.Shipping)
	address := normalize.Text(shipping["address"])
	requested := normalize.ShippingRequested(shipping["requestShipping"], address)
	cost := normalize.ShippingCost(shipping, order.ShippingCost)
	total := normalize.Total(subtotal, cost, requested)

	return OrderView{
		ID:              order.ID.Hex(),
		CustomerName:    order.CustomerName,
		Phone:           order.Phone,
		Email:           order.Email,
		Status:          order.Status,
		Items:           items,
		Subtotal:        subtotal,
		SubtotalDisplay: normalize.FormatRM(subtotal),
		Shipping: ShippingView{
			Requested: requested,
			Address:   address,
			City:      normalize.Text(shipping["city"]),
			State:     normalize.Text(shipping["state"]),
			Postcode:  normalize.Text(shipping["postcode"]),
			Cost:      cost,
		},
		Total:        total,
		TotalDisplay: normalize.FormatRM(total),
		CreatedAt:    order.CreatedAt,
	}
}

// canonicalProducts writes line items in the canonical shape. Price is the
// line total (unit price times quantity), matching how every read interprets
// the field.
func canonicalProducts(items []OrderItemRequest) []any {
	products := make([]any, 0, len(items))
	for _, it := range items {
		products = append(products, bson.M{
			"id":       it.ProductID,
			"name":     it.Name,
			"category": it.Category,
			"quantity": it.Quantity,
			"sizeType": it.SizeType,
			"price":    round2(it.UnitPrice * float64(it.Quantity)),
		})
	}
	return products
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
