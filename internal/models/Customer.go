// internal/models/customer.go
package models

import "time"

// Customer billing counters mirror the customer's current trips:
// TotalBilled tracks the sum of total_charged, PendingBalance the sum of
// pending_amount captured at trip-write time.
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name  string `json:"name" gorm:"uniqueIndex;not null"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	TotalTrips     int     `json:"total_trips" gorm:"default:0"`
	TotalBilled    float64 `json:"total_billed" gorm:"default:0"`
	PendingBalance float64 `json:"pending_balance" gorm:"default:0"`
}
