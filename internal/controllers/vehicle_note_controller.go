package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"travel_manager/internal/config"
	"travel_manager/internal/models"
	"travel_manager/internal/services"
)

func AddVehicleNote(c *gin.Context) {
	var input services.VehicleNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid vehicle note input: " + err.Error()})
		return
	}

	var note *models.VehicleNote
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		note, err = services.AddVehicleNote(tx, input)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"vehicle_note": note})
}

// ListVehicleNotes requires vehicle_id and a month in YYYY-MM form and
// returns the notes falling inside that month.
func ListVehicleNotes(c *gin.Context) {
	vehicleID, err := strconv.ParseUint(c.Query("vehicle_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vehicle_id query parameter is required"})
		return
	}

	var year, monthNum int
	if _, err := fmt.Sscanf(c.Query("month"), "%4d-%2d", &year, &monthNum); err != nil || monthNum < 1 || monthNum > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month format. Use YYYY-MM"})
		return
	}

	notes, err := services.NotesByMonth(config.DB, uint(vehicleID), year, time.Month(monthNum))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": notes})
}
