package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travel_manager/internal/config"
	"travel_manager/internal/models"
	"travel_manager/internal/services"
)

func CreateDriverExpense(c *gin.Context) {
	var input services.DriverExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver expense input: " + err.Error()})
		return
	}

	var expense *models.DriverExpense
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		expense, err = services.CreateDriverExpense(tx, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"driver_expense": expense})
}

func ExpensesByTrip(c *gin.Context) {
	tripID, ok := parseID(c, "tripId")
	if !ok {
		return
	}
	expenses, err := services.ExpensesByTrip(config.DB, tripID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": expenses})
}

func ExpensesByDriver(c *gin.Context) {
	driverID, ok := parseID(c, "driverId")
	if !ok {
		return
	}
	expenses, err := services.ExpensesByDriver(config.DB, driverID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": expenses})
}

func UpdateDriverExpense(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.DriverExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver expense input: " + err.Error()})
		return
	}

	var expense *models.DriverExpense
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		expense, err = services.UpdateDriverExpense(tx, id, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"driver_expense": expense})
}

func DeleteDriverExpense(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return services.DeleteDriverExpense(tx, id)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver expense deleted successfully"})
}
