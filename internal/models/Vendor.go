// internal/models/vendor.go
package models

import "time"

type Vendor struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `json:"name" gorm:"uniqueIndex;not null"`
	Category string `json:"category"` // fuel, spare, both
}

// Vendor categories. "both" vendors serve fuel and spare purchases alike and
// match any category filter.
const (
	VendorCategoryFuel  = "fuel"
	VendorCategorySpare = "spare"
	VendorCategoryBoth  = "both"
)
