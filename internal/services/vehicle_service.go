package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"travel_manager/internal/models"
)

type VehicleInput struct {
	VehicleNumber string `json:"vehicle_number" binding:"required"`
}

// CreateVehicle registers a plate number. The duplicate check only considers
// live rows, so a soft-deleted plate can be registered again.
func CreateVehicle(tx *gorm.DB, in VehicleInput) (*models.Vehicle, error) {
	var existing models.Vehicle
	err := tx.Where("vehicle_number = ?", in.VehicleNumber).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: vehicle %s", ErrAlreadyExists, in.VehicleNumber)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	vehicle := models.Vehicle{VehicleNumber: in.VehicleNumber}
	if err := tx.Create(&vehicle).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func ListVehicles(db *gorm.DB) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := db.Order("created_at DESC").Find(&vehicles).Error
	return vehicles, err
}

func GetVehicleByNumber(db *gorm.DB, vehicleNumber string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := db.Where("vehicle_number = ?", vehicleNumber).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, vehicleNumber)
		}
		return nil, err
	}
	return &vehicle, nil
}

// SoftDeleteVehicle hides the vehicle via gorm.DeletedAt. The row and its
// counters are retained; child records stay queryable by plate number.
func SoftDeleteVehicle(tx *gorm.DB, vehicleID uint) error {
	var vehicle models.Vehicle
	if err := tx.First(&vehicle, vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: vehicle %d", ErrNotFound, vehicleID)
		}
		return err
	}
	return tx.Delete(&vehicle).Error
}

// VehicleSummary is the per-vehicle roll-up shown on the vehicle detail page.
type VehicleSummary struct {
	VehicleNumber string `json:"vehicle_number"`

	TotalTrips             int64              `json:"total_trips"`
	TotalKm                int64              `json:"total_km"`
	TripCost               float64            `json:"trip_cost"`
	MaintenanceCost        float64            `json:"maintenance_cost"`
	MonthlyMaintenanceCost float64            `json:"monthly_maintenance_cost"`
	FuelCosts              map[string]float64 `json:"fuel_costs"`
	TotalFuelCost          float64            `json:"total_fuel_cost"`
	TotalVehicleCost       float64            `json:"total_vehicle_cost"`
	CustomersServed        int64              `json:"customers_served"`

	SpareParts []models.SparePart `json:"spare_parts"`
}

// SummarizeVehicle aggregates trips, fuel, spares and the monthly maintenance
// projection for one vehicle. Trip figures are recomputed from the trip table
// here (not read from the counters) since this view predates the counters and
// doubles as a cross-check on them.
func SummarizeVehicle(db *gorm.DB, vehicleNumber string) (*VehicleSummary, error) {
	vehicle, err := GetVehicleByNumber(db, vehicleNumber)
	if err != nil {
		return nil, err
	}

	summary := VehicleSummary{
		VehicleNumber:   vehicleNumber,
		MaintenanceCost: vehicle.TotalMaintenanceCost,
		FuelCosts:       map[string]float64{},
	}

	if err := db.Model(&models.Trip{}).
		Where("vehicle_number = ?", vehicleNumber).
		Count(&summary.TotalTrips).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Trip{}).
		Where("vehicle_number = ?", vehicleNumber).
		Select("COALESCE(SUM(distance_km), 0)").
		Scan(&summary.TotalKm).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Trip{}).
		Where("vehicle_number = ?", vehicleNumber).
		Select("COALESCE(SUM(total_cost), 0)").
		Scan(&summary.TripCost).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Trip{}).
		Where("vehicle_number = ?", vehicleNumber).
		Select("COUNT(DISTINCT customer_id)").
		Scan(&summary.CustomersServed).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	summary.MonthlyMaintenanceCost, err = MonthlyMaintenanceCost(db, vehicleNumber, now.Year(), now.Month())
	if err != nil {
		return nil, err
	}

	type fuelRow struct {
		FuelType string
		Cost     float64
	}
	var fuelRows []fuelRow
	if err := db.Model(&models.Fuel{}).
		Where("vehicle_number = ?", vehicleNumber).
		Select("fuel_type, COALESCE(SUM(total_cost), 0) AS cost").
		Group("fuel_type").
		Scan(&fuelRows).Error; err != nil {
		return nil, err
	}
	for _, row := range fuelRows {
		summary.FuelCosts[row.FuelType] = row.Cost
		summary.TotalFuelCost += row.Cost
	}

	summary.SpareParts, err = SparePartsByVehicle(db, vehicleNumber)
	if err != nil {
		return nil, err
	}

	summary.TotalVehicleCost = summary.TripCost + summary.MaintenanceCost +
		summary.TotalFuelCost + summary.MonthlyMaintenanceCost

	return &summary, nil
}
