// internal/models/spare_part.go
package models

import "time"

type SparePart struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	VehicleNumber string  `json:"vehicle_number" gorm:"index;not null"`
	PartName      string  `json:"part_name" gorm:"not null"`
	Cost          float64 `json:"cost" gorm:"not null"`
	Quantity      int     `json:"quantity" gorm:"default:1"`

	Vendor   string `json:"vendor"`
	VendorID *uint  `json:"vendor_id" gorm:"index"`

	ReplacedDate time.Time `json:"replaced_date" gorm:"not null"`
}
