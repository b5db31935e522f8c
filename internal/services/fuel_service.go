package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"travel_manager/internal/models"
)

type FuelInput struct {
	VehicleNumber string    `json:"vehicle_number" binding:"required"`
	FuelType      string    `json:"fuel_type" binding:"required"`
	Quantity      float64   `json:"quantity" binding:"required"`
	RatePerLitre  float64   `json:"rate_per_litre" binding:"required"`
	FilledDate    time.Time `json:"filled_date" binding:"required"`
	Vendor        string    `json:"vendor"`
	VendorID      *uint     `json:"vendor_id"`
}

// AddFuel records a fill. total_cost is always quantity x rate, never taken
// from the client.
func AddFuel(tx *gorm.DB, in FuelInput) (*models.Fuel, error) {
	var vehicle models.Vehicle
	if err := tx.Where("vehicle_number = ?", in.VehicleNumber).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, in.VehicleNumber)
		}
		return nil, err
	}

	fuel := models.Fuel{
		VehicleNumber: in.VehicleNumber,
		FuelType:      in.FuelType,
		Quantity:      in.Quantity,
		RatePerLitre:  in.RatePerLitre,
		TotalCost:     in.Quantity * in.RatePerLitre,
		Vendor:        in.Vendor,
		VendorID:      in.VendorID,
		FilledDate:    in.FilledDate,
	}
	if err := tx.Create(&fuel).Error; err != nil {
		return nil, err
	}
	return &fuel, nil
}

func GetFuel(db *gorm.DB, fuelID uint) (*models.Fuel, error) {
	var fuel models.Fuel
	if err := db.First(&fuel, fuelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: fuel entry %d", ErrNotFound, fuelID)
		}
		return nil, err
	}
	return &fuel, nil
}

func UpdateFuel(tx *gorm.DB, fuelID uint, in FuelInput) (*models.Fuel, error) {
	fuel, err := GetFuel(tx, fuelID)
	if err != nil {
		return nil, err
	}

	fuel.VehicleNumber = in.VehicleNumber
	fuel.FuelType = in.FuelType
	fuel.Quantity = in.Quantity
	fuel.RatePerLitre = in.RatePerLitre
	fuel.TotalCost = in.Quantity * in.RatePerLitre
	fuel.Vendor = in.Vendor
	fuel.VendorID = in.VendorID
	fuel.FilledDate = in.FilledDate

	if err := tx.Save(fuel).Error; err != nil {
		return nil, err
	}
	return fuel, nil
}

func DeleteFuel(tx *gorm.DB, fuelID uint) error {
	fuel, err := GetFuel(tx, fuelID)
	if err != nil {
		return err
	}
	return tx.Delete(fuel).Error
}

func FuelByVehicle(db *gorm.DB, vehicleNumber string) ([]models.Fuel, error) {
	var entries []models.Fuel
	err := db.Where("vehicle_number = ?", vehicleNumber).
		Order("filled_date DESC").Find(&entries).Error
	return entries, err
}

func ListFuel(db *gorm.DB) ([]models.Fuel, error) {
	var entries []models.Fuel
	err := db.Order("filled_date DESC").Find(&entries).Error
	return entries, err
}
