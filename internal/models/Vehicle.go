// internal/models/vehicle.go
package models

import (
	"gorm.io/gorm"
)

// Vehicle carries running counters maintained by the trip and spare-part
// services. Counters are adjusted by delta on every mutation, never
// recomputed on read. Vehicles are soft-deleted via gorm.DeletedAt so their
// history stays queryable.
type Vehicle struct {
	gorm.Model
	// Uniqueness only holds among live rows: the partial index frees a plate
	// once its vehicle is soft-deleted, and CreateVehicle re-checks live rows
	// before inserting.
	VehicleNumber string `json:"vehicle_number" gorm:"uniqueIndex:uniq_live_vehicle_number,where:deleted_at IS NULL;not null"`

	TotalKm              int     `json:"total_km" gorm:"default:0"`
	TotalTrips           int     `json:"total_trips" gorm:"default:0"`
	TotalMaintenanceCost float64 `json:"total_maintenance_cost" gorm:"default:0"`
}
