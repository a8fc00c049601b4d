package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/models"
	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/repository"
)

type InquiryController struct {
	repo repository.InquiryRepository
}

func NewInquiryController(repo repository.InquiryRepository) *InquiryController {
	return &InquiryController{repo: repo}
}

// GetInquiries returns paginated inquiries, newest first.
func (ic *InquiryController) GetInquiries(c *gin.Context) {
	page, limit := parsePaginationParams(c)

	inquiries, total, err := ic.repo.FindAll(c.Request.Context(), page, limit)
	if err != nil {
		zap.L().Error("Error finding inquiries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inquiries"})
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, gin.H{
		"inquiries": inquiries,
		"meta": gin.H{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}

// UpdateInquiryStatus toggles an inquiry between Pending and Replied. With no
// body, the status flips; with a body, the given status is set.
func (ic *InquiryController) UpdateInquiryStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inquiry ID format"})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	_ = c.ShouldBindJSON(&req)

	status := req.Status
	if status == "" {
		inquiry, err := ic.repo.FindByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
			return
		}
		if inquiry.Status == models.InquiryStatusReplied {
			status = models.InquiryStatusPending
		} else {
			status = models.InquiryStatusReplied
		}
	} else if status != models.InquiryStatusPending && status != models.InquiryStatusReplied {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be Pending or Replied"})
		return
	}

	matched, err := ic.repo.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		zap.L().Error("Error updating inquiry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inquiry"})
		return
	}
	if matched == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// DeleteInquiry removes an inquiry.
func (ic *InquiryController) DeleteInquiry(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid inquiry ID format"})
		return
	}

	deleted, err := ic.repo.Delete(c.Request.Context(), id)
	if err != nil {
		zap.L().Error("Error deleting inquiry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inquiry"})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inquiry deleted"})
}
