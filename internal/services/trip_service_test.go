package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel_manager/internal/models"
)

func TestCreateTripPerKm(t *testing.T) {
	db := newTestDB(t)
	vehicle, driver, customer := seedFleet(t, db)

	trip, err := CreateTrip(db, perKmTrip(vehicle, driver, customer))
	require.NoError(t, err)

	assert.Equal(t, 1500.0, trip.TotalCharged)
	assert.Equal(t, 1000.0, trip.PendingAmount)

	vehicle = reloadVehicle(t, db, vehicle.VehicleNumber)
	assert.Equal(t, 1, vehicle.TotalTrips)
	assert.Equal(t, 100, vehicle.TotalKm)

	customer = reloadCustomer(t, db, customer.ID)
	assert.Equal(t, 1, customer.TotalTrips)
	assert.Equal(t, 1500.0, customer.TotalBilled)
	assert.Equal(t, 1000.0, customer.PendingBalance)
}

func TestCreateTripPackageIgnoresDistance(t *testing.T) {
	db := newTestDB(t)
	vehicle, driver, customer := seedFleet(t, db)

	in := perKmTrip(vehicle, driver, customer)
	in.PricingType = models.PricingPackage
	in.PackageAmount = 5000
	in.CostPerKm = 0
	in.AmountReceived = 0

	trip, err := CreateTrip(db, in)
	require.NoError(t, err)

	assert.Equal(t, 5000.0, trip.TotalCharged)
	assert.Equal(t, 5000.0, trip.PendingAmount)

	// Distance still counts against the vehicle even on flat pricing.
	vehicle = reloadVehicle(t, db, vehicle.VehicleNumber)
	assert.Equal(t, 100, vehicle.TotalKm)
}

func TestCreateTripValidation(t *testing.T) {
	db := newTestDB(t)
	vehicle, driver, customer := seedFleet(t, db)

	cases := []struct {
		name   string
		mutate func(*TripInput)
	}{
		{"missing invoice", func(in *TripInput) { in.InvoiceNumber = "  " }},
		{"per-km with zero distance", func(in *TripInput) { in.DistanceKm = 0 }},
		{"package with zero amount", func(in *TripInput) {
			in.PricingType = models.PricingPackage
			in.PackageAmount = 0
		}},
		{"unknown pricing type", func(in *TripInput) { in.PricingType = "hourly" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := perKmTrip(vehicle, driver, customer)
			tc.mutate(&in)
			_, err := CreateTrip(db, in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// Invalid trips must not disturb the counters.
	vehicle = reloadVehicle(t, db, vehicle.VehicleNumber)
	assert.Equal(t, 0, vehicle.TotalTrips)
}

func TestCreateTripUnknownReferences(t *testing.T) {
	db := newTestDB(t)
	vehicle, driver, customer := seedFleet(t, db)

	in := perKmTrip(vehicle, driver, customer)
	in.VehicleNumber = "KA99ZZ0000"
	_, err := CreateTrip(db, in)
	assert.ErrorIs(t, err, ErrNotFound)

	in = perKmTrip(vehicle, driver, customer)
	in.DriverID = 999
	_, err = CreateTrip(db, in)
	assert.ErrorIs(t, err, ErrNotFound)

	in = perKmTrip(vehicle, driver, customer)
	in.CustomerID = 999
	_, err = CreateTrip(db, in)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateTripAppliesDeltas(t *testing.T) {
	db := newTestDB(t)
	vehicle, driver, customer := seedFleet(t, db)

	trip, err := CreateTrip(db, perKmTrip(vehicle, driver, customer))
	require.NoError(t, err)

	in := perKmTrip(vehicle, driver, customer)
	in.DistanceKm = 150

	updated, err := UpdateTrip(db, trip.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 2250.0, updated.TotalCharged)
	assert.Equal(t, 1750.0, updated.PendingAmount)

	vehicle = reloadVehicle(t, db, vehicle.VehicleNumber)
	assert.Equal(t, 150, vehicle.TotalKm)
	assert.Equal(t, 1, vehicle.TotalTrips, "update must not change the trip count")

	customer = reloadCustomer(t, db, customer.ID)
	assert.Equal(t, 1, customer.TotalTrips)
	assert.Equal(t, 2250.0, customer.TotalBilled)
	assert.Equal(t, 1750.0, customer.PendingBalance)
}

func TestDeleteTripReversesCounters(t *testing.T) {
	db := newTestDB(t)
	vehicle, driver, customer := seedFleet(t, db)

	trip, err := CreateTrip(db, perKmTrip(vehicle, driver, customer))
	require.NoError(t, err)

	require.NoError(t, DeleteTrip(db, trip.ID))

	vehicle = reloadVehicle(t, db, vehicle.VehicleNumber)
	assert.Equal(t, 0, vehicle.TotalTrips)
	assert.Equal(t, 0, vehicle.TotalKm)

	customer = reloadCustomer(t, db, customer.ID)
	assert.Equal(t, 0, customer.TotalTrips)
	assert.Equal(t, 0.0, customer.TotalBilled)
	assert.Equal(t, 0.0, customer.PendingBalance)

	_, err = GetTrip(db, trip.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTripSkipsRemovedVehicle(t *testing.T) {
	db := newTestDB(t)
	vehicle, driver, customer := seedFleet(t, db)

	trip, err := CreateTrip(db, perKmTrip(vehicle, driver, customer))
	require.NoError(t, err)

	require.NoError(t, SoftDeleteVehicle(db, vehicle.ID))

	// The vehicle decrement is skipped; the customer side still reverses.
	require.NoError(t, DeleteTrip(db, trip.ID))

	customer = reloadCustomer(t, db, customer.ID)
	assert.Equal(t, 0, customer.TotalTrips)
	assert.Equal(t, 0.0, customer.PendingBalance)
}

func TestTripsByVehicleAndDriver(t *testing.T) {
	db := newTestDB(t)
	vehicle, driver, customer := seedFleet(t, db)

	for i := 0; i < 3; i++ {
		in := perKmTrip(vehicle, driver, customer)
		in.InvoiceNumber = in.InvoiceNumber + string(rune('A'+i))
		_, err := CreateTrip(db, in)
		require.NoError(t, err)
	}

	byVehicle, err := TripsByVehicle(db, vehicle.VehicleNumber)
	require.NoError(t, err)
	assert.Len(t, byVehicle, 3)

	byDriver, err := TripsByDriver(db, driver.ID)
	require.NoError(t, err)
	assert.Len(t, byDriver, 3)

	byOther, err := TripsByVehicle(db, "KA99ZZ0000")
	require.NoError(t, err)
	assert.Empty(t, byOther)
}
