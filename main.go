package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/apperrors"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/controllers"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/database"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/logger"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/repository"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/routes"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/services"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/storage"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := database.Connect(cfg.MongoURI, cfg.MongoDatabase); err != nil {
		logger.Log.Fatal("Error connecting to database", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = database.Close(ctx)
	}()

	redisClient := database.NewRedisClient(cfg.RedisURL)

	orderRepo := repository.NewMongoOrderRepository(database.DB)
	productRepo := repository.NewMongoProductRepository(database.DB)
	reviewRepo := repository.NewMongoReviewRepository(database.DB)
	inquiryRepo := repository.NewMongoInquiryRepository(database.DB)

	catalogService := services.NewCatalogService(productRepo, redisClient, cfg.CatalogCacheTTL, logger.Log)
	orderService := services.NewOrderService(orderRepo, catalogService, logger.Log)
	customerService := services.NewCustomerService(orderRepo, logger.Log)
	dashboardService := services.NewDashboardService(orderRepo, productRepo, reviewRepo, inquiryRepo, catalogService, logger.Log)
	authService := services.NewAuthService(cfg.JWTSecret, cfg.AdminEmail, cfg.AdminPasswordHash, logger.Log)

	// Image uploads need AWS credentials; without them the endpoint reports
	// itself unconfigured instead of failing startup.
	var presigner *storage.Presigner
	if p, err := storage.NewPresigner(context.Background(), cfg.S3ImageBucket); err != nil {
		logger.Log.Warn("Presigned uploads disabled", zap.Error(err))
	} else {
		presigner = p
	}

	r := gin.New()
	r.Use(gin.Recovery(), logger.RequestLogger(), apperrors.ErrorMiddleware())

	routes.Register(r, routes.Controllers{
		Auth:      controllers.NewAuthController(authService),
		Orders:    controllers.NewOrderController(orderService),
		Products:  controllers.NewProductController(productRepo, catalogService),
		Customers: controllers.NewCustomerController(customerService),
		Reviews:   controllers.NewReviewController(reviewRepo),
		Inquiries: controllers.NewInquiryController(inquiryRepo),
		Dashboard: controllers.NewDashboardController(dashboardService),
		Uploads:   controllers.NewUploadController(presigner),
	}, []byte(cfg.JWTSecret))

	logger.Log.Info("Starting admin API", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
