package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"travel_manager/internal/config"
	"travel_manager/internal/models"
)

// newTestDB opens a fresh in-memory database with the full schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

// seedFleet registers one vehicle, driver and customer for trip fixtures.
func seedFleet(t *testing.T, db *gorm.DB) (*models.Vehicle, *models.Driver, *models.Customer) {
	t.Helper()

	vehicle, err := CreateVehicle(db, VehicleInput{VehicleNumber: "KA01AB1234"})
	require.NoError(t, err)

	driver, err := CreateDriver(db, DriverInput{Name: "Ravi", Phone: "9000000001"})
	require.NoError(t, err)

	customer, err := CreateCustomer(db, CustomerInput{Name: "Acme Tours", Phone: "9000000002"})
	require.NoError(t, err)

	return vehicle, driver, customer
}

// perKmTrip builds a valid per-km trip against the seeded fleet.
func perKmTrip(vehicle *models.Vehicle, driver *models.Driver, customer *models.Customer) TripInput {
	return TripInput{
		TripDate:      time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		FromLocation:  "Bangalore",
		ToLocation:    "Mysore",
		VehicleNumber: vehicle.VehicleNumber,
		DriverID:      driver.ID,
		CustomerID:    customer.ID,

		DistanceKm: 100,

		PricingType:    models.PricingPerKm,
		CostPerKm:      15,
		AmountReceived: 500,

		InvoiceNumber: "INV-001",
	}
}

func reloadVehicle(t *testing.T, db *gorm.DB, number string) *models.Vehicle {
	t.Helper()
	vehicle, err := GetVehicleByNumber(db, number)
	require.NoError(t, err)
	return vehicle
}

func reloadCustomer(t *testing.T, db *gorm.DB, id uint) *models.Customer {
	t.Helper()
	customer, err := GetCustomer(db, id)
	require.NoError(t, err)
	return customer
}
