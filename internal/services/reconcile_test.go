package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileCleanAfterTripLifecycle(t *testing.T) {
	db := newTestDB(t)
	vehicle, driver, customer := seedFleet(t, db)

	first, err := CreateTrip(db, perKmTrip(vehicle, driver, customer))
	require.NoError(t, err)

	second := perKmTrip(vehicle, driver, customer)
	second.DistanceKm = 250
	second.InvoiceNumber = "INV-002"
	_, err = CreateTrip(db, second)
	require.NoError(t, err)

	update := perKmTrip(vehicle, driver, customer)
	update.DistanceKm = 80
	_, err = UpdateTrip(db, first.ID, update)
	require.NoError(t, err)

	require.NoError(t, DeleteTrip(db, first.ID))

	drifts, err := ReconcileVehicles(db)
	require.NoError(t, err)
	assert.Empty(t, drifts)

	drifts, err = ReconcileCustomers(db)
	require.NoError(t, err)
	assert.Empty(t, drifts)
}

// Payments re-derive the trip's pending amount but leave the customer's
// snapshot alone, so the audit is expected to flag exactly that field.
func TestReconcileFlagsCustomerPendingAfterPayment(t *testing.T) {
	db := newTestDB(t)
	vehicle, driver, customer := seedFleet(t, db)

	trip, err := CreateTrip(db, perKmTrip(vehicle, driver, customer))
	require.NoError(t, err)

	_, err = CreatePayment(db, PaymentInput{TripID: trip.ID, Amount: 1000})
	require.NoError(t, err)

	drifts, err := ReconcileVehicles(db)
	require.NoError(t, err)
	assert.Empty(t, drifts)

	drifts, err = ReconcileCustomers(db)
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.Equal(t, "customer", drifts[0].Entity)
	assert.Equal(t, customer.ID, drifts[0].ID)
	assert.Equal(t, "pending_balance", drifts[0].Field)
	assert.Equal(t, 1000.0, drifts[0].Stored)
	assert.Equal(t, 0.0, drifts[0].Computed)
}

func TestReconcileDetectsManualTampering(t *testing.T) {
	db := newTestDB(t)
	vehicle, driver, customer := seedFleet(t, db)

	_, err := CreateTrip(db, perKmTrip(vehicle, driver, customer))
	require.NoError(t, err)

	fresh := reloadVehicle(t, db, vehicle.VehicleNumber)
	fresh.TotalKm = 5000
	require.NoError(t, db.Save(fresh).Error)

	drifts, err := ReconcileVehicles(db)
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.Equal(t, "total_km", drifts[0].Field)
	assert.Equal(t, 5000.0, drifts[0].Stored)
	assert.Equal(t, 100.0, drifts[0].Computed)
}
