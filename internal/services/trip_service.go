package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"travel_manager/internal/models"
)

// TripInput carries everything a client may set on a trip. Derived fields
// (total_cost, total_charged, pending_amount) are computed here and never
// accepted from the caller.
type TripInput struct {
	TripDate          time.Time  `json:"trip_date" binding:"required"`
	DepartureDatetime *time.Time `json:"departure_datetime"`
	ReturnDatetime    *time.Time `json:"return_datetime"`
	FromLocation      string     `json:"from_location" binding:"required"`
	ToLocation        string     `json:"to_location" binding:"required"`
	RouteDetails      string     `json:"route_details"`

	VehicleNumber string `json:"vehicle_number" binding:"required"`
	DriverID      uint   `json:"driver_id" binding:"required"`
	CustomerID    uint   `json:"customer_id" binding:"required"`

	DistanceKm int `json:"distance_km"`

	DieselUsed    float64 `json:"diesel_used"`
	PetrolUsed    float64 `json:"petrol_used"`
	TollAmount    float64 `json:"toll_amount"`
	ParkingAmount float64 `json:"parking_amount"`
	OtherExpenses float64 `json:"other_expenses"`
	Vendor        string  `json:"vendor"`

	PricingType          string  `json:"pricing_type"`
	PackageAmount        float64 `json:"package_amount"`
	CostPerKm            float64 `json:"cost_per_km"`
	ChargedTollAmount    float64 `json:"charged_toll_amount"`
	ChargedParkingAmount float64 `json:"charged_parking_amount"`
	AmountReceived       float64 `json:"amount_received"`
	AdvancePayment       float64 `json:"advance_payment"`

	InvoiceNumber string `json:"invoice_number"`
}

func validateTripPricing(in TripInput) error {
	if strings.TrimSpace(in.InvoiceNumber) == "" {
		return fmt.Errorf("%w: invoice number is required", ErrInvalidInput)
	}
	switch in.PricingType {
	case models.PricingPerKm:
		if in.DistanceKm <= 0 {
			return fmt.Errorf("%w: distance must be greater than zero for per-km pricing", ErrInvalidInput)
		}
	case models.PricingPackage:
		if in.PackageAmount <= 0 {
			return fmt.Errorf("%w: package amount must be greater than zero", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: invalid pricing type %q", ErrInvalidInput, in.PricingType)
	}
	return nil
}

func tripTotalCost(in TripInput) float64 {
	return in.DieselUsed + in.PetrolUsed + in.TollAmount + in.ParkingAmount + in.OtherExpenses
}

// Toll/parking are paid on the spot by the customer and excluded from the
// charge. Package trips bill a flat fee regardless of distance.
func tripTotalCharged(in TripInput) float64 {
	if in.PricingType == models.PricingPackage {
		return in.PackageAmount
	}
	return float64(in.DistanceKm) * in.CostPerKm
}

// CreateTrip validates the input, inserts the trip and bumps the vehicle and
// customer running counters, all on the caller's transaction.
func CreateTrip(tx *gorm.DB, in TripInput) (*models.Trip, error) {
	if err := validateTripPricing(in); err != nil {
		return nil, err
	}

	var vehicle models.Vehicle
	if err := tx.Where("vehicle_number = ?", in.VehicleNumber).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, in.VehicleNumber)
		}
		return nil, err
	}

	var driver models.Driver
	if err := tx.First(&driver, in.DriverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: driver %d", ErrNotFound, in.DriverID)
		}
		return nil, err
	}

	var customer models.Customer
	if err := tx.First(&customer, in.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %d", ErrNotFound, in.CustomerID)
		}
		return nil, err
	}

	totalCharged := tripTotalCharged(in)
	trip := models.Trip{
		TripDate:          in.TripDate,
		DepartureDatetime: in.DepartureDatetime,
		ReturnDatetime:    in.ReturnDatetime,
		FromLocation:      in.FromLocation,
		ToLocation:        in.ToLocation,
		RouteDetails:      in.RouteDetails,

		VehicleNumber: in.VehicleNumber,
		DriverID:      in.DriverID,
		CustomerID:    in.CustomerID,
		DistanceKm:    in.DistanceKm,

		DieselUsed:    in.DieselUsed,
		PetrolUsed:    in.PetrolUsed,
		TollAmount:    in.TollAmount,
		ParkingAmount: in.ParkingAmount,
		OtherExpenses: in.OtherExpenses,
		Vendor:        in.Vendor,
		TotalCost:     tripTotalCost(in),

		PricingType:          in.PricingType,
		PackageAmount:        in.PackageAmount,
		CostPerKm:            in.CostPerKm,
		ChargedTollAmount:    in.ChargedTollAmount,
		ChargedParkingAmount: in.ChargedParkingAmount,
		AmountReceived:       in.AmountReceived,
		AdvancePayment:       in.AdvancePayment,
		TotalCharged:         totalCharged,

		InvoiceNumber: in.InvoiceNumber,
	}
	trip.RecalculatePending()

	if err := tx.Create(&trip).Error; err != nil {
		return nil, err
	}

	vehicle.TotalTrips++
	vehicle.TotalKm += in.DistanceKm
	if err := tx.Save(&vehicle).Error; err != nil {
		return nil, err
	}

	customer.TotalTrips++
	customer.TotalBilled += totalCharged
	customer.PendingBalance += trip.PendingAmount
	if err := tx.Save(&customer).Error; err != nil {
		return nil, err
	}

	return &trip, nil
}

// UpdateTrip re-validates pricing against the new data, applies the distance
// delta to the vehicle and the charge/pending deltas to the customer. Deltas
// are computed against the values captured before the trip row is mutated.
func UpdateTrip(tx *gorm.DB, tripID uint, in TripInput) (*models.Trip, error) {
	var trip models.Trip
	if err := tx.First(&trip, tripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: trip %d", ErrNotFound, tripID)
		}
		return nil, err
	}

	if err := validateTripPricing(in); err != nil {
		return nil, err
	}

	// Distance delta goes to the vehicle the trip was recorded against.
	// Trip count is untouched: the trip still exists.
	var vehicle models.Vehicle
	vehicleErr := tx.Where("vehicle_number = ?", trip.VehicleNumber).First(&vehicle).Error
	if vehicleErr == nil {
		vehicle.TotalKm += in.DistanceKm - trip.DistanceKm
		if err := tx.Save(&vehicle).Error; err != nil {
			return nil, err
		}
	} else if !errors.Is(vehicleErr, gorm.ErrRecordNotFound) {
		return nil, vehicleErr
	}

	priorCharged := trip.TotalCharged
	priorPending := trip.PendingAmount

	trip.TripDate = in.TripDate
	trip.DepartureDatetime = in.DepartureDatetime
	trip.ReturnDatetime = in.ReturnDatetime
	trip.FromLocation = in.FromLocation
	trip.ToLocation = in.ToLocation
	trip.RouteDetails = in.RouteDetails
	trip.VehicleNumber = in.VehicleNumber
	trip.DriverID = in.DriverID
	trip.CustomerID = in.CustomerID
	trip.DistanceKm = in.DistanceKm

	trip.DieselUsed = in.DieselUsed
	trip.PetrolUsed = in.PetrolUsed
	trip.TollAmount = in.TollAmount
	trip.ParkingAmount = in.ParkingAmount
	trip.OtherExpenses = in.OtherExpenses
	trip.Vendor = in.Vendor
	trip.TotalCost = tripTotalCost(in)

	trip.PricingType = in.PricingType
	trip.PackageAmount = in.PackageAmount
	trip.CostPerKm = in.CostPerKm
	trip.ChargedTollAmount = in.ChargedTollAmount
	trip.ChargedParkingAmount = in.ChargedParkingAmount
	trip.AmountReceived = in.AmountReceived
	trip.AdvancePayment = in.AdvancePayment
	trip.InvoiceNumber = in.InvoiceNumber

	trip.TotalCharged = tripTotalCharged(in)
	trip.RecalculatePending()

	var customer models.Customer
	customerErr := tx.First(&customer, trip.CustomerID).Error
	if customerErr == nil {
		customer.TotalBilled += trip.TotalCharged - priorCharged
		customer.PendingBalance += trip.PendingAmount - priorPending
		if err := tx.Save(&customer).Error; err != nil {
			return nil, err
		}
	} else if !errors.Is(customerErr, gorm.ErrRecordNotFound) {
		return nil, customerErr
	}

	if err := tx.Save(&trip).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

// DeleteTrip reverses the counters using the trip's own stored values, then
// removes the row. A missing vehicle or customer skips its decrement rather
// than failing: the parent may already have been removed, and its counters
// go with it.
func DeleteTrip(tx *gorm.DB, tripID uint) error {
	var trip models.Trip
	if err := tx.First(&trip, tripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: trip %d", ErrNotFound, tripID)
		}
		return err
	}

	var vehicle models.Vehicle
	if err := tx.Where("vehicle_number = ?", trip.VehicleNumber).First(&vehicle).Error; err == nil {
		vehicle.TotalTrips--
		vehicle.TotalKm -= trip.DistanceKm
		if err := tx.Save(&vehicle).Error; err != nil {
			return err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var customer models.Customer
	if err := tx.First(&customer, trip.CustomerID).Error; err == nil {
		customer.TotalTrips--
		customer.TotalBilled -= trip.TotalCharged
		customer.PendingBalance -= trip.PendingAmount
		if err := tx.Save(&customer).Error; err != nil {
			return err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return tx.Delete(&trip).Error
}

func GetTrip(db *gorm.DB, tripID uint) (*models.Trip, error) {
	var trip models.Trip
	if err := db.First(&trip, tripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: trip %d", ErrNotFound, tripID)
		}
		return nil, err
	}
	return &trip, nil
}

func ListTrips(db *gorm.DB) ([]models.Trip, error) {
	var trips []models.Trip
	err := db.Order("created_at DESC").Find(&trips).Error
	return trips, err
}

func TripsByVehicle(db *gorm.DB, vehicleNumber string) ([]models.Trip, error) {
	var trips []models.Trip
	err := db.Where("vehicle_number = ?", vehicleNumber).
		Order("trip_date DESC").Find(&trips).Error
	return trips, err
}

func TripsByDriver(db *gorm.DB, driverID uint) ([]models.Trip, error) {
	var trips []models.Trip
	err := db.Where("driver_id = ?", driverID).
		Order("trip_date DESC").Find(&trips).Error
	return trips, err
}
