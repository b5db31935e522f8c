package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travel_manager/internal/config"
	"travel_manager/internal/models"
	"travel_manager/internal/services"
)

func AddVendor(c *gin.Context) {
	var input services.VendorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vendor input: " + err.Error()})
		return
	}

	var vendor *models.Vendor
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		vendor, err = services.AddVendor(tx, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vendor": vendor})
}

func ListVendors(c *gin.Context) {
	vendors, err := services.ListVendors(config.DB, c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": vendors})
}

// GetVendorSummary returns the vendor's ledger: purchases against payments.
func GetVendorSummary(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	summary, err := services.SummarizeVendor(config.DB, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
