// internal/models/driver_expense.go
package models

import "time"

type DriverExpense struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TripID      uint    `json:"trip_id" gorm:"index;not null"`
	DriverID    uint    `json:"driver_id" gorm:"index;not null"`
	Description string  `json:"description" gorm:"not null"` // e.g. "Police fine", "Road tax"
	Amount      float64 `json:"amount" gorm:"not null"`
	Notes       string  `json:"notes" gorm:"type:text"`
}
