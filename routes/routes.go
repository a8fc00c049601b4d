package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/apperrors"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/controllers"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/middleware"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth      *controllers.AuthController
	Orders    *controllers.OrderController
	Products  *controllers.ProductController
	Customers *controllers.CustomerController
	Reviews   *controllers.ReviewController
	Inquiries *controllers.InquiryController
	Dashboard *controllers.DashboardController
	Uploads   *controllers.UploadController
}

// Register mounts all routes. Everything except login and the health check
// sits behind the admin JWT.
func Register(r *gin.Engine, c Controllers, jwtSecret []byte) {
	r.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, apperrors.ErrNotFound)
	})

	auth := r.Group("/auth")
	auth.POST("/login", middleware.LoginRateLimit(), c.Auth.Login)

	admin := r.Group("/")
	admin.Use(middleware.RequireAdmin(jwtSecret))

	orders := admin.Group("/orders")
	orders.GET("", c.Orders.GetOrders)
	orders.GET("/export", c.Orders.ExportOrders)
	orders.GET("/:id", c.Orders.GetOrderByID)
	orders.POST("", c.Orders.CreateOrder)
	orders.PUT("/:id", c.Orders.UpdateOrder)
	orders.PATCH("/:id/status", c.Orders.UpdateOrderStatus)
	orders.DELETE("/:id", c.Orders.DeleteOrder)

	products := admin.Group("/products")
	products.GET("/uploads/presign", c.Uploads.GetPresignUpload)
	products.GET("/:category", c.Products.GetProducts)
	products.GET("/:category/:id", c.Products.GetProductByID)
	products.POST("/:category", c.Products.CreateProduct)
	products.PUT("/:category/:id", c.Products.UpdateProduct)
	products.DELETE("/:category/:id", c.Products.DeleteProduct)

	admin.GET("/customers", c.Customers.GetCustomers)

	reviews := admin.Group("/reviews")
	reviews.GET("", c.Reviews.GetReviews)
	reviews.POST("", c.Reviews.CreateReview)
	reviews.DELETE("/:id", c.Reviews.DeleteReview)

	inquiries := admin.Group("/inquiries")
	inquiries.GET("", c.Inquiries.GetInquiries)
	inquiries.PATCH("/:id/status", c.Inquiries.UpdateInquiryStatus)
	inquiries.DELETE("/:id", c.Inquiries.DeleteInquiry)

	admin.GET("/dashboard", c.Dashboard.GetSummary)
}
