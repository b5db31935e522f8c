package services

import (
	"time"

	"gorm.io/gorm"

	"travel_manager/internal/models"
)

type VehicleNoteInput struct {
	VehicleID uint      `json:"vehicle_id" binding:"required"`
	Note      string    `json:"note" binding:"required"`
	NoteDate  time.Time `json:"note_date" binding:"required"`
	CreatedBy *uint     `json:"created_by"`
}

func AddVehicleNote(tx *gorm.DB, in VehicleNoteInput) (*models.VehicleNote, error) {
	note := models.VehicleNote{
		VehicleID: in.VehicleID,
		Note:      in.Note,
		NoteDate:  in.NoteDate,
		CreatedBy: in.CreatedBy,
	}
	if err := tx.Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// NotesByMonth lists a vehicle's notes falling inside the given month,
// oldest first.
func NotesByMonth(db *gorm.DB, vehicleID uint, year int, month time.Month) ([]models.VehicleNote, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var notes []models.VehicleNote
	err := db.Where("vehicle_id = ? AND note_date >= ? AND note_date < ?", vehicleID, start, end).
		Order("note_date ASC").Find(&notes).Error
	return notes, err
}
