package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverExpenseLifecycle(t *testing.T) {
	db := newTestDB(t)
	vehicle, driver, customer := seedFleet(t, db)

	trip, err := CreateTrip(db, perKmTrip(vehicle, driver, customer))
	require.NoError(t, err)

	_, err = CreateDriverExpense(db, DriverExpenseInput{
		TripID: 999, DriverID: driver.ID, Description: "food", Amount: 150,
	})
	assert.ErrorIs(t, err, ErrNotFound)

	expense, err := CreateDriverExpense(db, DriverExpenseInput{
		TripID: trip.ID, DriverID: driver.ID, Description: "food", Amount: 150,
	})
	require.NoError(t, err)

	byTrip, err := ExpensesByTrip(db, trip.ID)
	require.NoError(t, err)
	assert.Len(t, byTrip, 1)

	updated, err := UpdateDriverExpense(db, expense.ID, DriverExpenseInput{
		TripID: trip.ID, DriverID: driver.ID, Description: "food and lodging", Amount: 400,
	})
	require.NoError(t, err)
	assert.Equal(t, 400.0, updated.Amount)

	require.NoError(t, DeleteDriverExpense(db, expense.ID))

	byDriver, err := ExpensesByDriver(db, driver.ID)
	require.NoError(t, err)
	assert.Empty(t, byDriver)
}

func TestDriverSalaryLifecycle(t *testing.T) {
	db := newTestDB(t)
	_, driver, _ := seedFleet(t, db)

	salary, err := CreateDriverSalary(db, DriverSalaryInput{
		DriverID: driver.ID,
		Amount:   18000,
		PaidOn:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	salaries, err := SalariesByDriver(db, driver.ID)
	require.NoError(t, err)
	assert.Len(t, salaries, 1)

	require.NoError(t, DeleteDriverSalary(db, salary.ID))

	salaries, err = SalariesByDriver(db, driver.ID)
	require.NoError(t, err)
	assert.Empty(t, salaries)
}
