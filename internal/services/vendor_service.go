package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"travel_manager/internal/models"
)

type VendorInput struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"` // fuel, spare, both
}

func AddVendor(tx *gorm.DB, in VendorInput) (*models.Vendor, error) {
	var existing models.Vendor
	err := tx.Where("name = ?", in.Name).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: vendor %s", ErrAlreadyExists, in.Name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	vendor := models.Vendor{Name: in.Name, Category: in.Category}
	if err := tx.Create(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// ListVendors optionally filters by category. Uncategorized vendors and
// "both" vendors match any category filter.
func ListVendors(db *gorm.DB, category string) ([]models.Vendor, error) {
	query := db.Order("name ASC")
	if category != "" {
		query = query.Where("category = ? OR category = ? OR category = '' OR category IS NULL",
			category, models.VendorCategoryBoth)
	}
	var vendors []models.Vendor
	err := query.Find(&vendors).Error
	return vendors, err
}

func GetVendor(db *gorm.DB, vendorID uint) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := db.First(&vendor, vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vendor %d", ErrNotFound, vendorID)
		}
		return nil, err
	}
	return &vendor, nil
}

// VendorSummary is the vendor ledger: what has been purchased against the
// vendor minus what has been paid out.
type VendorSummary struct {
	VendorID   uint    `json:"vendor_id"`
	VendorName string  `json:"vendor_name"`
	FuelTotal  float64 `json:"fuel_total"`
	SpareTotal float64 `json:"spare_total"`
	TotalOwed  float64 `json:"total_owed"`
	PaidTotal  float64 `json:"paid_total"`
	Pending    float64 `json:"pending"`
}

// SummarizeVendor totals fuel and spare purchases linked to the vendor either
// by the legacy free-text name or by the explicit vendor_id column, and nets
// them against recorded vendor payments.
func SummarizeVendor(db *gorm.DB, vendorID uint) (*VendorSummary, error) {
	vendor, err := GetVendor(db, vendorID)
	if err != nil {
		return nil, err
	}

	summary := VendorSummary{VendorID: vendor.ID, VendorName: vendor.Name}

	if err := db.Model(&models.Fuel{}).
		Where("vendor = ? OR vendor_id = ?", vendor.Name, vendor.ID).
		Select("COALESCE(SUM(total_cost), 0)").
		Scan(&summary.FuelTotal).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.SparePart{}).
		Where("vendor = ? OR vendor_id = ?", vendor.Name, vendor.ID).
		Select("COALESCE(SUM(cost * quantity), 0)").
		Scan(&summary.SpareTotal).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&models.VendorPayment{}).
		Where("vendor_id = ?", vendor.ID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&summary.PaidTotal).Error; err != nil {
		return nil, err
	}

	summary.TotalOwed = summary.FuelTotal + summary.SpareTotal
	summary.Pending = summary.TotalOwed - summary.PaidTotal
	return &summary, nil
}
