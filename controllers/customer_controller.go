package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ACXLVII/FYP-HijauanFaunaResources-Ecom-Admin-sub000/services"
)

type CustomerController struct {
	customerService services.CustomerService
}

func NewCustomerController(customerService services.CustomerService) *CustomerController {
	return &CustomerController{customerService: customerService}
}

// GetCustomers returns the customer list derived from the order history.
func (cc *CustomerController) GetCustomers(c *gin.Context) {
	customers, serviceErr := cc.customerService.ListCustomers(c.Request.Context())
	if serviceErr != nil {
		c.JSON(serviceErr.StatusCode, gin.H{"error": serviceErr.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers, "total": len(customers)})
}
