package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"travel_manager/internal/models"
)

type VendorPaymentInput struct {
	VendorID uint      `json:"vendor_id" binding:"required"`
	Amount   float64   `json:"amount" binding:"required"`
	PaidOn   time.Time `json:"paid_on" binding:"required"`
	Notes    string    `json:"notes"`
}

func CreateVendorPayment(tx *gorm.DB, in VendorPaymentInput) (*models.VendorPayment, error) {
	if _, err := GetVendor(tx, in.VendorID); err != nil {
		return nil, err
	}

	payment := models.VendorPayment{
		VendorID: in.VendorID,
		Amount:   in.Amount,
		PaidOn:   in.PaidOn,
		Notes:    in.Notes,
	}
	if err := tx.Create(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

func PaymentsByVendor(db *gorm.DB, vendorID uint) ([]models.VendorPayment, error) {
	var payments []models.VendorPayment
	err := db.Where("vendor_id = ?", vendorID).
		Order("paid_on DESC").Find(&payments).Error
	return payments, err
}

func DeleteVendorPayment(tx *gorm.DB, paymentID uint) error {
	var payment models.VendorPayment
	if err := tx.First(&payment, paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: vendor payment %d", ErrNotFound, paymentID)
		}
		return err
	}
	return tx.Delete(&payment).Error
}
