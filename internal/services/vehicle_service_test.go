package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel_manager/internal/models"
)

func TestCreateVehicleRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)

	_, err := CreateVehicle(db, VehicleInput{VehicleNumber: "KA01AB1234"})
	require.NoError(t, err)

	_, err = CreateVehicle(db, VehicleInput{VehicleNumber: "KA01AB1234"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestSoftDeletedPlateCanBeRegisteredAgain(t *testing.T) {
	db := newTestDB(t)

	vehicle, err := CreateVehicle(db, VehicleInput{VehicleNumber: "KA01AB1234"})
	require.NoError(t, err)

	require.NoError(t, SoftDeleteVehicle(db, vehicle.ID))

	_, err = GetVehicleByNumber(db, "KA01AB1234")
	assert.ErrorIs(t, err, ErrNotFound)

	// The plate is free again; history stays in the soft-deleted row.
	fresh, err := CreateVehicle(db, VehicleInput{VehicleNumber: "KA01AB1234"})
	require.NoError(t, err)
	assert.NotEqual(t, vehicle.ID, fresh.ID)
	assert.Equal(t, 0, fresh.TotalTrips)
}

func TestSoftDeleteVehicleUnknown(t *testing.T) {
	db := newTestDB(t)

	err := SoftDeleteVehicle(db, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSummarizeVehicle(t *testing.T) {
	db := newTestDB(t)
	vehicle, driver, customer := seedFleet(t, db)

	_, err := CreateTrip(db, perKmTrip(vehicle, driver, customer))
	require.NoError(t, err)

	_, err = AddFuel(db, FuelInput{
		VehicleNumber: vehicle.VehicleNumber,
		FuelType:      "diesel",
		Quantity:      40,
		RatePerLitre:  100,
		FilledDate:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = AddSparePart(db, sparePart(vehicle.VehicleNumber))
	require.NoError(t, err)

	addMaintenance(t, db, vehicle.VehicleNumber, models.MaintenanceEMI, 1000,
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))

	summary, err := SummarizeVehicle(db, vehicle.VehicleNumber)
	require.NoError(t, err)

	assert.Equal(t, vehicle.VehicleNumber, summary.VehicleNumber)
	assert.Equal(t, int64(1), summary.TotalTrips)
	assert.Equal(t, int64(100), summary.TotalKm)
	assert.Equal(t, 4000.0, summary.TotalFuelCost)
	assert.Equal(t, map[string]float64{"diesel": 4000}, summary.FuelCosts)
	assert.Equal(t, 400.0, summary.MaintenanceCost)
	assert.Len(t, summary.SpareParts, 1)
	assert.Equal(t, int64(1), summary.CustomersServed)
}

func TestSummarizeVehicleUnknown(t *testing.T) {
	db := newTestDB(t)

	_, err := SummarizeVehicle(db, "KA99ZZ0000")
	assert.ErrorIs(t, err, ErrNotFound)
}
