package services

import (
	"gorm.io/gorm"

	"travel_manager/internal/models"
)

// VehicleMaintenanceLine is the per-vehicle slice of the dashboard.
type VehicleMaintenanceLine struct {
	VehicleNumber   string  `json:"vehicle_number"`
	MaintenanceCost float64 `json:"maintenance_cost"`
}

type DashboardSummary struct {
	Trips    int64   `json:"trips"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
	TotalDue float64 `json:"total_due"`

	Vehicles []VehicleMaintenanceLine `json:"vehicles"`
}

// SummarizeDashboard rolls the whole fleet up: income is everything charged,
// expenses are trip costs plus fuel plus the maintenance counters, dues are
// the outstanding pending amounts.
func SummarizeDashboard(db *gorm.DB) (*DashboardSummary, error) {
	var summary DashboardSummary

	if err := db.Model(&models.Trip{}).Count(&summary.Trips).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Trip{}).
		Select("COALESCE(SUM(total_charged), 0)").
		Scan(&summary.Income).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Trip{}).
		Select("COALESCE(SUM(pending_amount), 0)").
		Scan(&summary.TotalDue).Error; err != nil {
		return nil, err
	}

	var tripExpenses, fuelCost, maintenanceCost float64
	if err := db.Model(&models.Trip{}).
		Select("COALESCE(SUM(total_cost), 0)").
		Scan(&tripExpenses).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Fuel{}).
		Select("COALESCE(SUM(total_cost), 0)").
		Scan(&fuelCost).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Vehicle{}).
		Select("COALESCE(SUM(total_maintenance_cost), 0)").
		Scan(&maintenanceCost).Error; err != nil {
		return nil, err
	}

	summary.Expenses = tripExpenses + fuelCost + maintenanceCost
	summary.Profit = summary.Income - summary.Expenses

	vehicles, err := ListVehicles(db)
	if err != nil {
		return nil, err
	}
	for _, v := range vehicles {
		summary.Vehicles = append(summary.Vehicles, VehicleMaintenanceLine{
			VehicleNumber:   v.VehicleNumber,
			MaintenanceCost: v.TotalMaintenanceCost,
		})
	}

	return &summary, nil
}
