package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"travel_manager/internal/models"
)

type DriverSalaryInput struct {
	DriverID uint      `json:"driver_id" binding:"required"`
	Amount   float64   `json:"amount" binding:"required"`
	PaidOn   time.Time `json:"paid_on" binding:"required"`
	Notes    string    `json:"notes"`
}

func CreateDriverSalary(tx *gorm.DB, in DriverSalaryInput) (*models.DriverSalary, error) {
	if _, err := GetDriver(tx, in.DriverID); err != nil {
		return nil, err
	}

	salary := models.DriverSalary{
		DriverID: in.DriverID,
		Amount:   in.Amount,
		PaidOn:   in.PaidOn,
		Notes:    in.Notes,
	}
	if err := tx.Create(&salary).Error; err != nil {
		return nil, err
	}
	return &salary, nil
}

func SalariesByDriver(db *gorm.DB, driverID uint) ([]models.DriverSalary, error) {
	var salaries []models.DriverSalary
	err := db.Where("driver_id = ?", driverID).
		Order("paid_on DESC").Find(&salaries).Error
	return salaries, err
}

func DeleteDriverSalary(tx *gorm.DB, salaryID uint) error {
	var salary models.DriverSalary
	if err := tx.First(&salary, salaryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: driver salary %d", ErrNotFound, salaryID)
		}
		return err
	}
	return tx.Delete(&salary).Error
}
