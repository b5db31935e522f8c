package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"travel_manager/internal/models"
)

type DriverExpenseInput struct {
	TripID      uint    `json:"trip_id" binding:"required"`
	DriverID    uint    `json:"driver_id" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Notes       string  `json:"notes"`
}

func CreateDriverExpense(tx *gorm.DB, in DriverExpenseInput) (*models.DriverExpense, error) {
	if _, err := GetTrip(tx, in.TripID); err != nil {
		return nil, err
	}
	if _, err := GetDriver(tx, in.DriverID); err != nil {
		return nil, err
	}

	expense := models.DriverExpense{
		TripID:      in.TripID,
		DriverID:    in.DriverID,
		Description: in.Description,
		Amount:      in.Amount,
		Notes:       in.Notes,
	}
	if err := tx.Create(&expense).Error; err != nil {
		return nil, err
	}
	return &expense, nil
}

func GetDriverExpense(db *gorm.DB, expenseID uint) (*models.DriverExpense, error) {
	var expense models.DriverExpense
	if err := db.First(&expense, expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: driver expense %d", ErrNotFound, expenseID)
		}
		return nil, err
	}
	return &expense, nil
}

func ExpensesByTrip(db *gorm.DB, tripID uint) ([]models.DriverExpense, error) {
	var expenses []models.DriverExpense
	err := db.Where("trip_id = ?", tripID).Find(&expenses).Error
	return expenses, err
}

func ExpensesByDriver(db *gorm.DB, driverID uint) ([]models.DriverExpense, error) {
	var expenses []models.DriverExpense
	err := db.Where("driver_id = ?", driverID).Find(&expenses).Error
	return expenses, err
}

func UpdateDriverExpense(tx *gorm.DB, expenseID uint, in DriverExpenseInput) (*models.DriverExpense, error) {
	expense, err := GetDriverExpense(tx, expenseID)
	if err != nil {
		return nil, err
	}

	expense.TripID = in.TripID
	expense.DriverID = in.DriverID
	expense.Description = in.Description
	expense.Amount = in.Amount
	expense.Notes = in.Notes

	if err := tx.Save(expense).Error; err != nil {
		return nil, err
	}
	return expense, nil
}

func DeleteDriverExpense(tx *gorm.DB, expenseID uint) error {
	expense, err := GetDriverExpense(tx, expenseID)
	if err != nil {
		return err
	}
	return tx.Delete(expense).Error
}
