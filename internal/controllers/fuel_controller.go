package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travel_manager/internal/config"
	"travel_manager/internal/models"
	"travel_manager/internal/services"
)

func AddFuel(c *gin.Context) {
	var input services.FuelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fuel input: " + err.Error()})
		return
	}

	var fuel *models.Fuel
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		fuel, err = services.AddFuel(tx, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"fuel": fuel})
}

func ListFuel(c *gin.Context) {
	entries, err := services.ListFuel(config.DB)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func FuelByVehicle(c *gin.Context) {
	entries, err := services.FuelByVehicle(config.DB, c.Param("vehicleNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

func GetFuel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	fuel, err := services.GetFuel(config.DB, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fuel": fuel})
}

func UpdateFuel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.FuelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid fuel input: " + err.Error()})
		return
	}

	var fuel *models.Fuel
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		fuel, err = services.UpdateFuel(tx, id, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fuel": fuel})
}

func DeleteFuel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return services.DeleteFuel(tx, id)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Fuel entry deleted successfully"})
}
