package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"travel_manager/internal/models"
)

type MaintenanceInput struct {
	VehicleNumber   string    `json:"vehicle_number" binding:"required"`
	MaintenanceType string    `json:"maintenance_type" binding:"required"`
	Description     string    `json:"description"`
	Amount          float64   `json:"amount" binding:"required"`
	StartDate       time.Time `json:"start_date" binding:"required"`
}

func validMaintenanceType(t string) bool {
	switch t {
	case models.MaintenanceEMI, models.MaintenanceInsurance, models.MaintenanceTax:
		return true
	}
	return false
}

// AddMaintenance records a recurring cost commitment. It does not touch
// Vehicle.TotalMaintenanceCost; maintenance is pro-rated on demand by
// MonthlyMaintenanceCost.
func AddMaintenance(tx *gorm.DB, in MaintenanceInput) (*models.Maintenance, error) {
	if !validMaintenanceType(in.MaintenanceType) {
		return nil, fmt.Errorf("%w: invalid maintenance type %q", ErrInvalidInput, in.MaintenanceType)
	}

	var vehicle models.Vehicle
	if err := tx.Where("vehicle_number = ?", in.VehicleNumber).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, in.VehicleNumber)
		}
		return nil, err
	}

	maintenance := models.Maintenance{
		VehicleNumber:   in.VehicleNumber,
		MaintenanceType: in.MaintenanceType,
		Description:     in.Description,
		Amount:          in.Amount,
		StartDate:       in.StartDate,
	}
	if err := tx.Create(&maintenance).Error; err != nil {
		return nil, err
	}
	return &maintenance, nil
}

func GetMaintenance(db *gorm.DB, maintenanceID uint) (*models.Maintenance, error) {
	var maintenance models.Maintenance
	if err := db.First(&maintenance, maintenanceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: maintenance record %d", ErrNotFound, maintenanceID)
		}
		return nil, err
	}
	return &maintenance, nil
}

// MaintenanceByVehicle lists records for a vehicle, newest first, optionally
// filtered by type.
func MaintenanceByVehicle(db *gorm.DB, vehicleNumber, maintenanceType string) ([]models.Maintenance, error) {
	query := db.Where("vehicle_number = ?", vehicleNumber)
	if maintenanceType != "" {
		query = query.Where("maintenance_type = ?", maintenanceType)
	}
	var records []models.Maintenance
	err := query.Order("start_date DESC").Find(&records).Error
	return records, err
}

func UpdateMaintenance(tx *gorm.DB, maintenanceID uint, in MaintenanceInput) (*models.Maintenance, error) {
	if !validMaintenanceType(in.MaintenanceType) {
		return nil, fmt.Errorf("%w: invalid maintenance type %q", ErrInvalidInput, in.MaintenanceType)
	}

	maintenance, err := GetMaintenance(tx, maintenanceID)
	if err != nil {
		return nil, err
	}

	maintenance.VehicleNumber = in.VehicleNumber
	maintenance.MaintenanceType = in.MaintenanceType
	maintenance.Description = in.Description
	maintenance.Amount = in.Amount
	maintenance.StartDate = in.StartDate

	if err := tx.Save(maintenance).Error; err != nil {
		return nil, err
	}
	return maintenance, nil
}

func DeleteMaintenance(tx *gorm.DB, maintenanceID uint) error {
	maintenance, err := GetMaintenance(tx, maintenanceID)
	if err != nil {
		return err
	}
	return tx.Delete(maintenance).Error
}

// taxWindow is how long a tax record keeps contributing after its start date.
const taxWindow = 90 * 24 * time.Hour

// MonthlyMaintenanceCost projects the vehicle's maintenance cost for the
// first day of the given month. EMI contributes its full amount every month
// from its start; insurance is annual, spread as amount/12 indefinitely; tax
// covers three months, contributing amount/3 only while the month start falls
// inside the 90-day window. Recomputed on every call, never cached.
func MonthlyMaintenanceCost(db *gorm.DB, vehicleNumber string, year int, month time.Month) (float64, error) {
	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	records, err := MaintenanceByVehicle(db, vehicleNumber, "")
	if err != nil {
		return 0, err
	}

	var total float64
	for _, m := range records {
		if m.StartDate.After(monthStart) {
			continue
		}
		switch m.MaintenanceType {
		case models.MaintenanceEMI:
			total += m.Amount
		case models.MaintenanceInsurance:
			total += m.Amount / 12
		case models.MaintenanceTax:
			if !monthStart.After(m.StartDate.Add(taxWindow)) {
				total += m.Amount / 3
			}
		}
	}
	return total, nil
}
