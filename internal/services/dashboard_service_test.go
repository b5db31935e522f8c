package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeDashboard(t *testing.T) {
	db := newTestDB(t)
	vehicle, driver, customer := seedFleet(t, db)

	in := perKmTrip(vehicle, driver, customer)
	in.TollAmount = 200
	in.OtherExpenses = 300
	_, err := CreateTrip(db, in)
	require.NoError(t, err)

	_, err = AddFuel(db, FuelInput{
		VehicleNumber: vehicle.VehicleNumber,
		FuelType:      "diesel",
		Quantity:      10,
		RatePerLitre:  100,
		FilledDate:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = AddSparePart(db, sparePart(vehicle.VehicleNumber))
	require.NoError(t, err)

	summary, err := SummarizeDashboard(db)
	require.NoError(t, err)

	assert.Equal(t, int64(1), summary.Trips)
	assert.Equal(t, 1500.0, summary.Income)
	assert.Equal(t, 1000.0, summary.TotalDue)
	// 500 trip expenses + 1000 fuel + 400 spare parts.
	assert.Equal(t, 1900.0, summary.Expenses)
	assert.Equal(t, -400.0, summary.Profit)

	require.Len(t, summary.Vehicles, 1)
	assert.Equal(t, vehicle.VehicleNumber, summary.Vehicles[0].VehicleNumber)
	assert.Equal(t, 400.0, summary.Vehicles[0].MaintenanceCost)
}

func TestSummarizeDashboardEmptyFleet(t *testing.T) {
	db := newTestDB(t)

	summary, err := SummarizeDashboard(db)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Trips)
	assert.Equal(t, 0.0, summary.Income)
	assert.Equal(t, 0.0, summary.Profit)
	assert.Empty(t, summary.Vehicles)
}
