package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/models"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/normalize"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/repository"
)

const recentOrderCount = 5

type DashboardSummary struct {
	OrderCount       int64       `json:"orderCount"`
	ProductCount     int64       `json:"productCount"`
	ReviewCount      int64       `json:"reviewCount"`
	PendingInquiries int64       `json:"pendingInquiries"`
	Revenue          float64     `json:"revenue"`
	RevenueDisplay   string      `json:"revenueDisplay"`
	AverageRating    float64     `json:"averageRating"`
	RecentOrders     []OrderView `json:"recentOrders"`
}

type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, *ServiceError)
}

type dashboardServiceImpl struct {
	orders    repository.OrderRepository
	products  repository.ProductRepository
	reviews   repository.ReviewRepository
	inquiries repository.InquiryRepository
	catalog   CatalogService
	logger    *zap.Logger
}

func NewDashboardService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	reviews repository.ReviewRepository,
	inquiries repository.InquiryRepository,
	catalog CatalogService,
	logger *zap.Logger,
) DashboardService {
	return &dashboardServiceImpl{
		orders:    orders,
		products:  products,
		reviews:   reviews,
		inquiries: inquiries,
		catalog:   catalog,
		logger:    logger,
	}
}

func (s *dashboardServiceImpl) Summary(ctx context.Context) (*DashboardSummary, *ServiceError) {
	allOrders, err := s.orders.All(ctx)
	if err != nil {
		s.logger.Error("Dashboard order load failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to build dashboard"}
	}

	summary := &DashboardSummary{OrderCount: int64(len(allOrders))}

	// Revenue sums every order's total, shipping included.
	for _, order := range allOrders {
		items := normalize.Items(order.Products, nil)
		shipping := map[string]any(order.Shipping)
		address := normalize.Text(shipping["address"])
		summary.Revenue += normalize.Total(
			normalize.Subtotal(items),
			normalize.ShippingCost(shipping, order.ShippingCost),
			normalize.ShippingRequested(shipping["requestShipping"], address),
		)
	}
	summary.RevenueDisplay = normalize.FormatRM(summary.Revenue)

	// Product count spans all category collections. A failed category is
	// skipped, matching how the catalog lookup degrades.
	for _, category := range models.ProductCategories {
		count, err := s.products.Count(ctx, category)
		if err != nil {
			s.logger.Warn("Dashboard product count failed",
				zap.String("category", category), zap.Error(err))
			continue
		}
		summary.ProductCount += count
	}

	reviews, err := s.reviews.All(ctx)
	if err != nil {
		s.logger.Warn("Dashboard review load failed", zap.Error(err))
	} else {
		summary.ReviewCount = int64(len(reviews))
		if len(reviews) > 0 {
			var sum float64
			for i := range reviews {
				sum += reviews[i].RatingValue()
			}
			summary.AverageRating = sum / float64(len(reviews))
		}
	}

	pending, err := s.inquiries.CountByStatus(ctx, models.InquiryStatusPending)
	if err != nil {
		s.logger.Warn("Dashboard inquiry count failed", zap.Error(err))
	} else {
		summary.PendingInquiries = pending
	}

	lookup := s.catalog.NameLookup(ctx)
	recent := allOrders
	if len(recent) > recentOrderCount {
		recent = recent[:recentOrderCount]
	}
	summary.RecentOrders = make([]OrderView, 0, len(recent))
	for i := range recent {
		summary.RecentOrders = append(summary.RecentOrders, BuildOrderView(&recent[i], lookup))
	}

	return summary, nil
}
