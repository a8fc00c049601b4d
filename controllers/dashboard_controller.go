package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/services"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetSummary returns the landing-page counters, revenue and recent orders.
func (dc *DashboardController) GetSummary(c *gin.Context) {
	summary, serviceErr := dc.dashboardService.Summary(c.Request.Context())
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}
	c.JSON(http.StatusOK, summary)
}
