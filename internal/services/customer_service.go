package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"travel_manager/internal/models"
)

type CustomerInput struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func CreateCustomer(tx *gorm.DB, in CustomerInput) (*models.Customer, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	var existing models.Customer
	err := tx.Where("name = ?", in.Name).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: customer %s", ErrAlreadyExists, in.Name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	customer := models.Customer{Name: in.Name, Phone: in.Phone, Email: in.Email}
	if err := tx.Create(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func ListCustomers(db *gorm.DB) ([]models.Customer, error) {
	var customers []models.Customer
	err := db.Order("name ASC").Find(&customers).Error
	return customers, err
}

func GetCustomer(db *gorm.DB, customerID uint) (*models.Customer, error) {
	var customer models.Customer
	if err := db.First(&customer, customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %d", ErrNotFound, customerID)
		}
		return nil, err
	}
	return &customer, nil
}

// UpdateCustomer edits identifying fields only; the billing counters are
// owned by the trip service.
func UpdateCustomer(tx *gorm.DB, customerID uint, in CustomerInput) (*models.Customer, error) {
	customer, err := GetCustomer(tx, customerID)
	if err != nil {
		return nil, err
	}

	customer.Name = in.Name
	customer.Phone = in.Phone
	customer.Email = in.Email
	if err := tx.Save(customer).Error; err != nil {
		return nil, err
	}
	return customer, nil
}

// CustomerWithTrips returns the customer and their trips, newest first.
func CustomerWithTrips(db *gorm.DB, customerID uint) (*models.Customer, []models.Trip, error) {
	customer, err := GetCustomer(db, customerID)
	if err != nil {
		return nil, nil, err
	}

	var trips []models.Trip
	if err := db.Where("customer_id = ?", customerID).
		Order("trip_date DESC").Find(&trips).Error; err != nil {
		return nil, nil, err
	}
	return customer, trips, nil
}
