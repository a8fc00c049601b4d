package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/services"
)

type OrderController struct {
	orderService services.OrderService
}

func NewOrderController(orderService services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// GetOrders returns paginated orders with normalized items and totals.
func (oc *OrderController) GetOrders(ctx *gin.Context) {
	page, limit := parsePaginationParams(ctx)

	result, serviceErr := oc.orderService.ListOrders(ctx.Request.Context(), page, limit)
	if serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetOrderByID returns a single order.
func (oc *OrderController) GetOrderByID(ctx *gin.Context) {
	order, serviceErr := oc.orderService.GetOrder(ctx.Request.Context(), ctx.Param("id"))
	if serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"order": order})
}

// CreateOrder handles order creation requests.
func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	var req services.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, serviceErr := oc.orderService.CreateOrder(ctx.Request.Context(), &req)
	if serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"order": order})
}

// UpdateOrder applies a partial update to an order.
func (oc *OrderController) UpdateOrder(ctx *gin.Context) {
	var req services.UpdateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if serviceErr := oc.orderService.UpdateOrder(ctx.Request.Context(), ctx.Param("id"), &req); serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Order updated"})
}

// UpdateOrderStatus changes only the status field.
func (oc *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	if serviceErr := oc.orderService.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), req.Status); serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}

// DeleteOrder removes an order.
func (oc *OrderController) DeleteOrder(ctx *gin.Context) {
	if serviceErr := oc.orderService.DeleteOrder(ctx.Request.Context(), ctx.Param("id")); serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}

// ExportOrders streams the full order list as a CSV download.
func (oc *OrderController) ExportOrders(ctx *gin.Context) {
	filename := fmt.Sprintf("orders-%s.csv", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if serviceErr := oc.orderService.ExportCSV(ctx.Request.Context(), ctx.Writer); serviceErr != nil {
		ctx.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}
}

// parsePaginationParams extracts and validates pagination parameters.
func parsePaginationParams(ctx *gin.Context) (int, int) {
	const MaxLimit = 100
	const DefaultPage = 1
	const DefaultLimit = 10

	pageInt := DefaultPage
	limitInt := DefaultLimit

	if p, err := strconv.Atoi(ctx.DefaultQuery("page", "1")); err == nil && p > 0 {
		pageInt = p
	}
	if l, err := strconv.Atoi(ctx.DefaultQuery("limit", "10")); err == nil && l > 0 {
		limitInt = l
		if limitInt > MaxLimit {
			limitInt = MaxLimit
		}
	}
	return pageInt, limitInt
}
