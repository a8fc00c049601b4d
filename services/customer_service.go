package services

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/models"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/normalize"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/repository"
)

// CustomerService derives the customer list from orders. Customers are not a
// stored collection: two orders belong to the same customer when their
// (name, phone, email) composite key matches, compared case-insensitively.
type CustomerService interface {
	ListCustomers(ctx context.Context) ([]models.Customer, *ServiceError)
}

type customerServiceImpl struct {
	orders repository.OrderRepository
	logger *zap.Logger
}

func NewCustomerService(orders repository.OrderRepository, logger *zap.Logger) CustomerService {
	return &customerServiceImpl{orders: orders, logger: logger}
}

func (s *customerServiceImpl) ListCustomers(ctx context.Context) ([]models.Customer, *ServiceError) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		s.logger.Error("ListCustomers failed", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to fetch customers"}
	}

	byKey := make(map[string]*models.Customer)
	for _, order := range orders {
		key := customerKey(order.CustomerName, order.Phone, order.Email)

		// Order total includes the shipping surcharge when delivery was
		// requested, same as the order views.
		items := normalize.Items(order.Products, nil)
		shipping := map[string]any(order.Shipping)
		address := normalize.Text(shipping["address"])
		total := normalize.Total(
			normalize.Subtotal(items),
			normalize.ShippingCost(shipping, order.ShippingCost),
			normalize.ShippingRequested(shipping["requestShipping"], address),
		)

		customer, ok := byKey[key]
		if !ok {
			customer = &models.Customer{
				Name:  order.CustomerName,
				Phone: order.Phone,
				Email: order.Email,
			}
			byKey[key] = customer
		}
		customer.OrderCount++
		customer.TotalSpent += total
		if order.CreatedAt.After(customer.LastOrderAt) {
			customer.LastOrderAt = order.CreatedAt
		}
	}

	customers := make([]models.Customer, 0, len(byKey))
	for _, c := range byKey {
		c.TotalSpentDisplay = normalize.FormatRM(c.TotalSpent)
		customers = append(customers, *c)
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].LastOrderAt.After(customers[j].LastOrderAt)
	})
	return customers, nil
}

func customerKey(name, phone, email string) string {
	norm := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	return norm(name) + "|" + norm(phone) + "|" + norm(email)
}
