package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travel_manager/internal/config"
	"travel_manager/internal/models"
	"travel_manager/internal/services"
)

func CreateVendorPayment(c *gin.Context) {
	var input services.VendorPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor payment input: " + err.Error()})
		return
	}

	var payment *models.VendorPayment
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		payment, err = services.CreateVendorPayment(tx, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vendor_payment": payment})
}

func PaymentsByVendor(c *gin.Context) {
	vendorID, ok := parseID(c, "vendorId")
	if !ok {
		return
	}
	payments, err := services.PaymentsByVendor(config.DB, vendorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": payments})
}

func DeleteVendorPayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return services.DeleteVendorPayment(tx, id)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Vendor payment deleted successfully"})
}
