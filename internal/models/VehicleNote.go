// internal/models/vehicle_note.go
package models

import "time"

// VehicleNote is a dated free-text note, independent of any running counter.
type VehicleNote struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`

	VehicleID uint      `json:"vehicle_id" gorm:"index;not null"`
	Note      string    `json:"note" gorm:"not null"`
	NoteDate  time.Time `json:"note_date" gorm:"index;not null"`
	CreatedBy *uint     `json:"created_by"`
}
