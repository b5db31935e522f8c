// internal/models/payment.go
package models

import "time"

type Payment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TripID      uint      `json:"trip_id" gorm:"index;not null"`
	PaymentDate time.Time `json:"payment_date"`
	PaymentMode string    `json:"payment_mode"` // Cash, Check, Online, etc.
	Amount      float64   `json:"amount" gorm:"not null"`
	Notes       string    `json:"notes"`
}
