package controllers

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/storage"
)

// UploadController hands out presigned S3 PUT URLs so the dashboard can
// upload product and review images directly to the bucket.
type UploadController struct {
	presigner *storage.Presigner
}

func NewUploadController(presigner *storage.Presigner) *UploadController {
	return &UploadController{presigner: presigner}
}

// GetPresignUpload returns a presigned URL for a direct image upload.
func (uc *UploadController) GetPresignUpload(c *gin.Context) {
	if uc.presigner == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image uploads are not configured"})
		return
	}

	filename := c.DefaultQuery("filename", "upload")
	contentType := c.DefaultQuery("content_type", "image/jpeg")
	if !isAllowedImageContentType(contentType) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Invalid content type. Allowed: %v", allowedImageTypes()),
		})
		return
	}

	expires, err := strconv.ParseInt(c.DefaultQuery("expires", "900"), 10, 64)
	if err != nil || expires <= 0 {
		expires = 900
	}
	// Cap at 1 hour
	if expires > 3600 {
		expires = 3600
	}

	key := fmt.Sprintf("images/%s/%s", uuid.NewString(), filename)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	url, err := uc.presigner.PresignPut(ctx, key, contentType, expires)
	if err != nil {
		zap.L().Error("Failed to generate presigned upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate presigned upload"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"upload_url": url,
		"method":     "PUT",
		"key":        key,
		"public_url": fmt.Sprintf("https://%s.s3.amazonaws.com/%s", uc.presigner.Bucket(), key),
		"expires_in": expires,
		"expires_at": time.Now().Add(time.Duration(expires) * time.Second).UTC(),
	})
}

func isAllowedImageContentType(contentType string) bool {
	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/webp": true,
		"image/gif":  true,
	}
	return allowedTypes[contentType]
}

func allowedImageTypes() []string {
	types := []string{"image/jpeg", "image/jpg", "image/png", "image/webp", "image/gif"}
	sort.Strings(types)
	return types
}
