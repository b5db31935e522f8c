package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travel_manager/internal/config"
	"travel_manager/internal/models"
	"travel_manager/internal/services"
)

func CreateDriverSalary(c *gin.Context) {
	var input services.DriverSalaryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver salary input: " + err.Error()})
		return
	}

	var salary *models.DriverSalary
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		salary, err = services.CreateDriverSalary(tx, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"driver_salary": salary})
}

func SalariesByDriver(c *gin.Context) {
	driverID, ok := parseID(c, "driverId")
	if !ok {
		return
	}
	salaries, err := services.SalariesByDriver(config.DB, driverID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": salaries})
}

func DeleteDriverSalary(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return services.DeleteDriverSalary(tx, id)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Driver salary deleted successfully"})
}
