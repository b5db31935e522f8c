package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"travel_manager/internal/models"
)

type SparePartInput struct {
	VehicleNumber string    `json:"vehicle_number" binding:"required"`
	PartName      string    `json:"part_name" binding:"required"`
	Cost          float64   `json:"cost" binding:"required"`
	Quantity      int       `json:"quantity"`
	Vendor        string    `json:"vendor"`
	VendorID      *uint     `json:"vendor_id"`
	ReplacedDate  time.Time `json:"replaced_date" binding:"required"`
}

// AddSparePart inserts the part and adds cost x quantity to the vehicle's
// running maintenance total.
func AddSparePart(tx *gorm.DB, in SparePartInput) (*models.SparePart, error) {
	var vehicle models.Vehicle
	if err := tx.Where("vehicle_number = ?", in.VehicleNumber).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, in.VehicleNumber)
		}
		return nil, err
	}

	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	spare := models.SparePart{
		VehicleNumber: in.VehicleNumber,
		PartName:      in.PartName,
		Cost:          in.Cost,
		Quantity:      quantity,
		Vendor:        in.Vendor,
		VendorID:      in.VendorID,
		ReplacedDate:  in.ReplacedDate,
	}
	if err := tx.Create(&spare).Error; err != nil {
		return nil, err
	}

	vehicle.TotalMaintenanceCost += spare.Cost * float64(spare.Quantity)
	if err := tx.Save(&vehicle).Error; err != nil {
		return nil, err
	}

	return &spare, nil
}

// UpdateSparePart overwrites the part's fields and applies the cost delta
// (new - old) to the vehicle total. The old cost is captured before the row
// is mutated.
func UpdateSparePart(tx *gorm.DB, spareID uint, in SparePartInput) (*models.SparePart, error) {
	var spare models.SparePart
	if err := tx.First(&spare, spareID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: spare part %d", ErrNotFound, spareID)
		}
		return nil, err
	}

	oldCost := spare.Cost * float64(spare.Quantity)

	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	spare.PartName = in.PartName
	spare.Cost = in.Cost
	spare.Quantity = quantity
	spare.Vendor = in.Vendor
	spare.VendorID = in.VendorID
	spare.ReplacedDate = in.ReplacedDate

	var vehicle models.Vehicle
	if err := tx.Where("vehicle_number = ?", spare.VehicleNumber).First(&vehicle).Error; err == nil {
		vehicle.TotalMaintenanceCost += spare.Cost*float64(spare.Quantity) - oldCost
		if err := tx.Save(&vehicle).Error; err != nil {
			return nil, err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := tx.Save(&spare).Error; err != nil {
		return nil, err
	}
	return &spare, nil
}

// DeleteSparePart removes the part and subtracts its cost x quantity from the
// vehicle total.
func DeleteSparePart(tx *gorm.DB, spareID uint) error {
	var spare models.SparePart
	if err := tx.First(&spare, spareID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: spare part %d", ErrNotFound, spareID)
		}
		return err
	}

	var vehicle models.Vehicle
	if err := tx.Where("vehicle_number = ?", spare.VehicleNumber).First(&vehicle).Error; err == nil {
		vehicle.TotalMaintenanceCost -= spare.Cost * float64(spare.Quantity)
		if err := tx.Save(&vehicle).Error; err != nil {
			return err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return tx.Delete(&spare).Error
}

func SparePartsByVehicle(db *gorm.DB, vehicleNumber string) ([]models.SparePart, error) {
	var parts []models.SparePart
	err := db.Where("vehicle_number = ?", vehicleNumber).
		Order("replaced_date DESC").Find(&parts).Error
	return parts, err
}

func ListSpareParts(db *gorm.DB) ([]models.SparePart, error) {
	var parts []models.SparePart
	err := db.Order("replaced_date DESC").Find(&parts).Error
	return parts, err
}
