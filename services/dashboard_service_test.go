package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/models"
)

type fakeReviewRepo struct {
	reviews []models.Review
}

func (f *fakeReviewRepo) FindAll(_ context.Context, page, limit int) ([]models.Review, int64, error) {
	return f.reviews, int64(len(f.reviews)), nil
}
func (f *fakeReviewRepo) All(_ context.Context) ([]models.Review, error) { return f.reviews, nil }
func (f *fakeReviewRepo) Create(_ context.Context, review *models.Review) error {
	return nil
}
func (f *fakeReviewRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	return 0, nil
}
func (f *fakeReviewRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.reviews)), nil
}

type fakeInquiryRepo struct {
	pending int64
}

func (f *fakeInquiryRepo) FindAll(_ context.Context, page, limit int) ([]models.Inquiry, int64, error) {
	return nil, 0, nil
}
func (f *fakeInquiryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Inquiry, error) {
	return nil, nil
}
func (f *fakeInquiryRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) (int64, error) {
	return 0, nil
}
func (f *fakeInquiryRepo) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	return 0, nil
}
func (f *fakeInquiryRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	return f.pending, nil
}

func TestDashboardSummary(t *testing.T) {
	orders := []models.Order{
		{
			ID:           primitive.NewObjectID(),
			CustomerName: "Aisyah Rahman",
			Products:     []any{bson.M{"id": "AG25", "price": 100.0}},
			Shipping:     bson.M{"requestShipping": true, "cost": 15.0},
			CreatedAt:    time.Now().UTC(),
		},
		{
			ID:           primitive.NewObjectID(),
			CustomerName: "Lim Wei Jie",
			Products:     []any{bson.M{"name": "Clay Pot", "price": 18.0}},
			CreatedAt:    time.Now().UTC().Add(-time.Hour),
		},
	}
	orderRepo := &mockOrderRepo{orders: orders}
	productRepo := &fakeProductRepo{names: map[string]map[string]string{
		"artificial_grass": {"AG25": "Emerald Turf"},
		"pots":             {"PT1": "Clay Pot", "PT2": "Terracotta Pot"},
	}}
	reviewRepo := &fakeReviewRepo{reviews: []models.Review{
		{Rating: 5},
		{Stars: 3}, // legacy field name
	}}
	inquiryRepo := &fakeInquiryRepo{pending: 4}

	logger, _ := zap.NewDevelopment()
	catalog := NewCatalogService(productRepo, nil, time.Minute, logger)
	svc := NewDashboardService(orderRepo, productRepo, reviewRepo, inquiryRepo, catalog, logger)

	summary, serviceErr := svc.Summary(context.Background())
	if serviceErr != nil {
		t.Fatalf("Summary returned error: %v", serviceErr)
	}

	assert.Equal(t, int64(2), summary.OrderCount)
	assert.Equal(t, int64(3), summary.ProductCount)
	assert.Equal(t, int64(2), summary.ReviewCount)
	assert.Equal(t, int64(4), summary.PendingInquiries)
	assert.Equal(t, 133.0, summary.Revenue) // 100 + 15 shipping + 18
	assert.Equal(t, "RM 133.00", summary.RevenueDisplay)
	assert.Equal(t, 4.0, summary.AverageRating)

	assert.Len(t, summary.RecentOrders, 2)
	assert.Equal(t, "Emerald Turf", summary.RecentOrders[0].Items[0].Name)
}
