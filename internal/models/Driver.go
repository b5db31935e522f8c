// internal/models/driver.go
package models

import "time"

type Driver struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name          string `json:"name" gorm:"not null"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
}
