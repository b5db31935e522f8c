// internal/models/maintenance.go
package models

import "time"

// Maintenance types recognized by the monthly cost projection.
const (
	MaintenanceEMI       = "emi"
	MaintenanceInsurance = "insurance"
	MaintenanceTax       = "tax"
)

// Maintenance records do not feed Vehicle.TotalMaintenanceCost; their cost is
// pro-rated on demand by MonthlyMaintenanceCost instead.
type Maintenance struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	VehicleNumber   string    `json:"vehicle_number" gorm:"index;not null"`
	MaintenanceType string    `json:"maintenance_type" gorm:"not null"` // emi, insurance, tax
	Description     string    `json:"description"`
	Amount          float64   `json:"amount" gorm:"not null"`
	StartDate       time.Time `json:"start_date" gorm:"not null"`
}
