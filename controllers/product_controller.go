package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/models"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/repository"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/services"
)

const maxProductImages = 3

type ProductController struct {
	repo    repository.ProductRepository
	catalog services.CatalogService
}

func NewProductController(repo repository.ProductRepository, catalog services.CatalogService) *ProductController {
	return &ProductController{repo: repo, catalog: catalog}
}

type productRequest struct {
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	InStock     bool               `json:"inStock"`
	Images      []string           `json:"images" binding:"max=3"`
	Features    []models.Feature   `json:"features"`
	Prices      []models.PriceTier `json:"prices"`
}

// GetProducts retrieves paginated products for one category collection.
func (pc *ProductController) GetProducts(c *gin.Context) {
	category := c.Param("category")
	if !models.IsProductCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown product category"})
		return
	}

	page, limit := parsePaginationParams(c)

	products, total, err := pc.repo.FindAll(c.Request.Context(), category, page, limit)
	if err != nil {
		zap.L().Error("Error finding products", zap.String("category", category), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"meta": gin.H{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}

// GetProductByID retrieves a single product.
func (pc *ProductController) GetProductByID(c *gin.Context) {
	category := c.Param("category")
	if !models.IsProductCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown product category"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	product, err := pc.repo.FindByID(c.Request.Context(), category, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			zap.L().Error("Database error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct adds a catalog entry to a category collection.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	category := c.Param("category")
	if !models.IsProductCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown product category"})
		return
	}

	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}
	if len(req.Images) > maxProductImages {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A product carries at most 3 images"})
		return
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		InStock:     req.InStock,
		Images:      req.Images,
		Features:    req.Features,
		Prices:      req.Prices,
	}
	if err := pc.repo.Create(c.Request.Context(), category, product); err != nil {
		zap.L().Error("Error creating product", zap.String("category", category), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	pc.catalog.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, product)
}

// UpdateProduct applies a partial update.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	category := c.Param("category")
	if !models.IsProductCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown product category"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil || len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}
	// _id and category are immutable; category doubles as the collection name.
	delete(updates, "_id")
	delete(updates, "id")
	delete(updates, "category")

	matched, err := pc.repo.Update(c.Request.Context(), category, id, bson.M(updates))
	if err != nil {
		zap.L().Error("Error updating product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	if matched == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	pc.catalog.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

// DeleteProduct removes a catalog entry.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	category := c.Param("category")
	if !models.IsProductCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown product category"})
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID format"})
		return
	}

	deleted, err := pc.repo.Delete(c.Request.Context(), category, id)
	if err != nil {
		zap.L().Error("Error deleting product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	pc.catalog.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
