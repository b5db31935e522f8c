package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sparePart(vehicleNumber string) SparePartInput {
	return SparePartInput{
		VehicleNumber: vehicleNumber,
		PartName:      "brake pad",
		Cost:          200,
		Quantity:      2,
		Vendor:        "City Motors",
		ReplacedDate:  time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
	}
}

func TestAddSparePartBumpsMaintenanceTotal(t *testing.T) {
	db := newTestDB(t)
	vehicle, _, _ := seedFleet(t, db)

	spare, err := AddSparePart(db, sparePart(vehicle.VehicleNumber))
	require.NoError(t, err)
	assert.Equal(t, 2, spare.Quantity)

	vehicle = reloadVehicle(t, db, vehicle.VehicleNumber)
	assert.Equal(t, 400.0, vehicle.TotalMaintenanceCost)
}

func TestAddSparePartDefaultsQuantity(t *testing.T) {
	db := newTestDB(t)
	vehicle, _, _ := seedFleet(t, db)

	in := sparePart(vehicle.VehicleNumber)
	in.Quantity = 0
	spare, err := AddSparePart(db, in)
	require.NoError(t, err)
	assert.Equal(t, 1, spare.Quantity)

	vehicle = reloadVehicle(t, db, vehicle.VehicleNumber)
	assert.Equal(t, 200.0, vehicle.TotalMaintenanceCost)
}

func TestAddSparePartUnknownVehicle(t *testing.T) {
	db := newTestDB(t)
	seedFleet(t, db)

	_, err := AddSparePart(db, sparePart("KA99ZZ0000"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateSparePartAppliesCostDelta(t *testing.T) {
	db := newTestDB(t)
	vehicle, _, _ := seedFleet(t, db)

	spare, err := AddSparePart(db, sparePart(vehicle.VehicleNumber))
	require.NoError(t, err)

	in := sparePart(vehicle.VehicleNumber)
	in.Cost = 300
	in.Quantity = 1

	updated, err := UpdateSparePart(db, spare.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 300.0, updated.Cost)

	vehicle = reloadVehicle(t, db, vehicle.VehicleNumber)
	assert.Equal(t, 300.0, vehicle.TotalMaintenanceCost)
}

func TestDeleteSparePartSubtractsCost(t *testing.T) {
	db := newTestDB(t)
	vehicle, _, _ := seedFleet(t, db)

	spare, err := AddSparePart(db, sparePart(vehicle.VehicleNumber))
	require.NoError(t, err)

	require.NoError(t, DeleteSparePart(db, spare.ID))

	vehicle = reloadVehicle(t, db, vehicle.VehicleNumber)
	assert.Equal(t, 0.0, vehicle.TotalMaintenanceCost)

	parts, err := SparePartsByVehicle(db, vehicle.VehicleNumber)
	require.NoError(t, err)
	assert.Empty(t, parts)
}
