package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travel_manager/internal/config"
	"travel_manager/internal/models"
	"travel_manager/internal/services"
)

func CreateMaintenance(c *gin.Context) {
	var input services.MaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maintenance input: " + err.Error()})
		return
	}

	var maintenance *models.Maintenance
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		maintenance, err = services.AddMaintenance(tx, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"maintenance": maintenance})
}

func MaintenanceByVehicle(c *gin.Context) {
	records, err := services.MaintenanceByVehicle(config.DB,
		c.Param("vehicleNumber"), c.Query("maintenance_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": records})
}

func GetMaintenance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	maintenance, err := services.GetMaintenance(config.DB, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"maintenance": maintenance})
}

func UpdateMaintenance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.MaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maintenance input: " + err.Error()})
		return
	}

	var maintenance *models.Maintenance
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		maintenance, err = services.UpdateMaintenance(tx, id, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"maintenance": maintenance})
}

func DeleteMaintenance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		return services.DeleteMaintenance(tx, id)
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Maintenance record deleted successfully"})
}

// MonthlyMaintenanceCost projects the pro-rated maintenance cost for a
// vehicle and month. Year and month default to the current date.
func MonthlyMaintenanceCost(c *gin.Context) {
	vehicleNumber := c.Param("vehicleNumber")

	year, _ := strconv.Atoi(c.Query("year"))
	monthNum, _ := strconv.Atoi(c.Query("month"))

	cost, err := services.MonthlyMaintenanceCost(config.DB, vehicleNumber, year, time.Month(monthNum))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicle_number":           vehicleNumber,
		"monthly_maintenance_cost": cost,
	})
}
