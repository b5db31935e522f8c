package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travel_manager/internal/config"
	"travel_manager/internal/models"
	"travel_manager/internal/services"
)

func CreateCustomer(c *gin.Context) {
	var input services.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer input: " + err.Error()})
		return
	}

	var customer *models.Customer
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		customer, err = services.CreateCustomer(tx, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"customer": customer})
}

func ListCustomers(c *gin.Context) {
	customers, err := services.ListCustomers(config.DB)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": customers})
}

// GetCustomer returns the customer along with their trips, newest first.
func GetCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	customer, trips, err := services.CustomerWithTrips(config.DB, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer, "trips": trips})
}

func UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer input: " + err.Error()})
		return
	}

	var customer *models.Customer
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		customer, err = services.UpdateCustomer(tx, id, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": customer})
}
