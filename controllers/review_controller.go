package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/models"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/repository"
)

type ReviewController struct {
	repo repository.ReviewRepository
}

func NewReviewController(repo repository.ReviewRepository) *ReviewController {
	return &ReviewController{repo: repo}
}

// reviewView flattens the rating's alternate encodings into one number.
type reviewView struct {
	models.Review
	Rating float64 `json:"rating"`
}

// GetReviews returns paginated reviews, newest first.
func (rc *ReviewController) GetReviews(c *gin.Context) {
	page, limit := parsePaginationParams(c)

	reviews, total, err := rc.repo.FindAll(c.Request.Context(), page, limit)
	if err != nil {
		zap.L().Error("Error finding reviews", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	views := make([]reviewView, 0, len(reviews))
	for i := range reviews {
		views = append(views, reviewView{Review: reviews[i], Rating: reviews[i].RatingValue()})
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, gin.H{
		"reviews": views,
		"meta": gin.H{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}

// CreateReview stores a review in canonical shape (single rating field).
func (rc *ReviewController) CreateReview(c *gin.Context) {
	var req struct {
		Name    string   `json:"name" binding:"required"`
		Comment string   `json:"comment" binding:"required"`
		Rating  float64  `json:"rating" binding:"required,min=1,max=5"`
		Images  []string `json:"images"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	review := &models.Review{
		Name:    req.Name,
		Comment: req.Comment,
		Rating:  req.Rating,
		Images:  req.Images,
	}
	if err := rc.repo.Create(c.Request.Context(), review); err != nil {
		zap.L().Error("Error creating review", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, reviewView{Review: *review, Rating: req.Rating})
}

// DeleteReview removes a review.
func (rc *ReviewController) DeleteReview(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID format"})
		return
	}

	deleted, err := rc.repo.Delete(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("Error deleting review", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
