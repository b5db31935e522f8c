// internal/models/fuel.go
package models

import "time"

// Fuel links to its vendor two ways: the legacy free-text Vendor name and an
// optional VendorID added so new rows can reference the vendors table
// directly. The vendor ledger matches on either.
type Fuel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	VehicleNumber string  `json:"vehicle_number" gorm:"index;not null"`
	FuelType      string  `json:"fuel_type" gorm:"not null"` // diesel / petrol
	Quantity      float64 `json:"quantity" gorm:"not null"`  // litres
	RatePerLitre  float64 `json:"rate_per_litre" gorm:"not null"`
	TotalCost     float64 `json:"total_cost" gorm:"not null"`

	Vendor   string `json:"vendor"`
	VendorID *uint  `json:"vendor_id" gorm:"index"`

	FilledDate time.Time `json:"filled_date" gorm:"not null"`
}
