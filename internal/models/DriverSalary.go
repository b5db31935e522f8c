// internal/models/driver_salary.go
package models

import "time"

type DriverSalary struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DriverID uint      `json:"driver_id" gorm:"index;not null"`
	Amount   float64   `json:"amount" gorm:"not null"`
	PaidOn   time.Time `json:"paid_on" gorm:"not null"`
	Notes    string    `json:"notes" gorm:"type:text"`
}
