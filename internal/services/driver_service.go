package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"travel_manager/internal/models"
)

type DriverInput struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
}

func CreateDriver(tx *gorm.DB, in DriverInput) (*models.Driver, error) {
	driver := models.Driver{
		Name:          in.Name,
		Phone:         in.Phone,
		LicenseNumber: in.LicenseNumber,
	}
	if err := tx.Create(&driver).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

func ListDrivers(db *gorm.DB) ([]models.Driver, error) {
	var drivers []models.Driver
	err := db.Order("name ASC").Find(&drivers).Error
	return drivers, err
}

func GetDriver(db *gorm.DB, driverID uint) (*models.Driver, error) {
	var driver models.Driver
	if err := db.First(&driver, driverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: driver %d", ErrNotFound, driverID)
		}
		return nil, err
	}
	return &driver, nil
}
