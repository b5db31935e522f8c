// internal/models/trip.go
package models

import "time"

// Trip is the central transactional record. The cost side feeds TotalCost,
// the billing side feeds TotalCharged/PendingAmount. PendingAmount is always
// derived, never edited directly.
type Trip struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TripDate          time.Time  `json:"trip_date" gorm:"not null"`
	DepartureDatetime *time.Time `json:"departure_datetime"`
	ReturnDatetime    *time.Time `json:"return_datetime"`
	FromLocation      string     `json:"from_location" gorm:"not null"`
	ToLocation        string     `json:"to_location" gorm:"not null"`
	RouteDetails      string     `json:"route_details" gorm:"type:text"`

	// Trips reference vehicles by plate number, matching the original schema.
	VehicleNumber string `json:"vehicle_number" gorm:"index"`
	DriverID      uint   `json:"driver_id" gorm:"index"`
	CustomerID    uint   `json:"customer_id" gorm:"index"`

	DistanceKm int `json:"distance_km"` // optional for package pricing

	// Operator cost side
	DieselUsed    float64 `json:"diesel_used" gorm:"default:0"`
	PetrolUsed    float64 `json:"petrol_used" gorm:"default:0"`
	TollAmount    float64 `json:"toll_amount" gorm:"default:0"`
	ParkingAmount float64 `json:"parking_amount" gorm:"default:0"`
	OtherExpenses float64 `json:"other_expenses" gorm:"default:0"`
	Vendor        string  `json:"vendor"`
	TotalCost     float64 `json:"total_cost" gorm:"default:0"`

	// Customer billing side
	PricingType          string  `json:"pricing_type" gorm:"default:per_km"` // per_km or package
	PackageAmount        float64 `json:"package_amount" gorm:"default:0"`
	CostPerKm            float64 `json:"cost_per_km" gorm:"default:0"`
	ChargedTollAmount    float64 `json:"charged_toll_amount" gorm:"default:0"`
	ChargedParkingAmount float64 `json:"charged_parking_amount" gorm:"default:0"`
	AmountReceived       float64 `json:"amount_received" gorm:"default:0"`
	AdvancePayment       float64 `json:"advance_payment" gorm:"default:0"`
	TotalCharged         float64 `json:"total_charged" gorm:"default:0"`
	PendingAmount        float64 `json:"pending_amount" gorm:"default:0"`

	InvoiceNumber string `json:"invoice_number"`
}

// Pricing types accepted on the billing side.
const (
	PricingPerKm   = "per_km"
	PricingPackage = "package"
)

// RecalculatePending keeps the invariant pending = max(charged - received, 0).
func (t *Trip) RecalculatePending() {
	pending := t.TotalCharged - t.AmountReceived
	if pending < 0 {
		pending = 0
	}
	t.PendingAmount = pending
}
