package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travel_manager/internal/config"
	"travel_manager/internal/models"
	"travel_manager/internal/services"
)

func AddSparePart(c *gin.Context) {
	var input services.SparePartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid spare part input: " + err.Error()})
		return
	}

	var spare *models.SparePart
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		spare, err = services.AddSparePart(tx, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"spare_part": spare})
}

func ListSpareParts(c *gin.Context) {
	parts, err := services.ListSpareParts(config.DB)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": parts})
}

func SparePartsByVehicle(c *gin.Context) {
	parts, err := services.SparePartsByVehicle(config.DB, c.Param("vehicleNumber"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": parts})
}

func UpdateSparePart(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.SparePartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid spare part input: " + err.Error()})
		return
	}

	var spare *models.SparePart
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		spare, err = services.UpdateSparePart(tx, id, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"spare_part": spare})
}

func DeleteSparePart(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return services.DeleteSparePart(tx, id)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Spare part deleted successfully"})
}
