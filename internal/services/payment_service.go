package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"travel_manager/internal/models"
)

type PaymentInput struct {
	TripID      uint       `json:"trip_id" binding:"required"`
	PaymentDate *time.Time `json:"payment_date"`
	PaymentMode string     `json:"payment_mode"`
	Amount      float64    `json:"amount" binding:"required"`
	Notes       string     `json:"notes"`
}

// CreatePayment records a cash receipt against a trip and bumps the trip's
// amount_received, re-deriving pending_amount. Customer counters are left
// alone: TotalBilled tracks charges only, and PendingBalance is a snapshot
// maintained at trip-write time.
func CreatePayment(tx *gorm.DB, in PaymentInput) (*models.Payment, error) {
	if in.Amount <= 0 {
		return nil, fmt.Errorf("%w: payment amount must be greater than zero", ErrInvalidInput)
	}

	var trip models.Trip
	if err := tx.First(&trip, in.TripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: trip %d", ErrNotFound, in.TripID)
		}
		return nil, err
	}

	paidOn := time.Now()
	if in.PaymentDate != nil {
		paidOn = *in.PaymentDate
	}
	payment := models.Payment{
		TripID:      in.TripID,
		PaymentDate: paidOn,
		PaymentMode: in.PaymentMode,
		Amount:      in.Amount,
		Notes:       in.Notes,
	}
	if err := tx.Create(&payment).Error; err != nil {
		return nil, err
	}

	trip.AmountReceived += in.Amount
	trip.RecalculatePending()
	if err := tx.Save(&trip).Error; err != nil {
		return nil, err
	}

	return &payment, nil
}

// DeletePayment reverses the receipt: amount_received drops by the payment
// amount, floored at zero, and pending_amount is re-derived.
func DeletePayment(tx *gorm.DB, paymentID uint) error {
	var payment models.Payment
	if err := tx.First(&payment, paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: payment %d", ErrNotFound, paymentID)
		}
		return err
	}

	var trip models.Trip
	if err := tx.First(&trip, payment.TripID).Error; err == nil {
		trip.AmountReceived -= payment.Amount
		if trip.AmountReceived < 0 {
			trip.AmountReceived = 0
		}
		trip.RecalculatePending()
		if err := tx.Save(&trip).Error; err != nil {
			return err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return tx.Delete(&payment).Error
}

func PaymentsByTrip(db *gorm.DB, tripID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := db.Where("trip_id = ?", tripID).
		Order("payment_date DESC").Find(&payments).Error
	return payments, err
}

func ListPayments(db *gorm.DB) ([]models.Payment, error) {
	var payments []models.Payment
	err := db.Order("payment_date DESC").Find(&payments).Error
	return payments, err
}
