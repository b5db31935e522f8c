package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel_manager/internal/models"
)

func TestAddVendorRejectsDuplicate(t *testing.T) {
	db := newTestDB(t)

	_, err := AddVendor(db, VendorInput{Name: "Shell Depot", Category: models.VendorCategoryFuel})
	require.NoError(t, err)

	_, err = AddVendor(db, VendorInput{Name: "Shell Depot"})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestListVendorsCategoryFilter(t *testing.T) {
	db := newTestDB(t)

	for _, v := range []VendorInput{
		{Name: "Shell Depot", Category: models.VendorCategoryFuel},
		{Name: "City Motors", Category: models.VendorCategorySpare},
		{Name: "Highway Mart", Category: models.VendorCategoryBoth},
		{Name: "Misc Traders"},
	} {
		_, err := AddVendor(db, v)
		require.NoError(t, err)
	}

	all, err := ListVendors(db, "")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	// A category filter keeps "both" and uncategorized vendors visible.
	fuel, err := ListVendors(db, models.VendorCategoryFuel)
	require.NoError(t, err)
	names := make([]string, 0, len(fuel))
	for _, v := range fuel {
		names = append(names, v.Name)
	}
	assert.ElementsMatch(t, []string{"Shell Depot", "Highway Mart", "Misc Traders"}, names)
}

func TestSummarizeVendorLedger(t *testing.T) {
	db := newTestDB(t)
	vehicle, _, _ := seedFleet(t, db)

	vendor, err := AddVendor(db, VendorInput{Name: "Shell Depot", Category: models.VendorCategoryBoth})
	require.NoError(t, err)

	// Fuel linked by the legacy free-text name only.
	_, err = AddFuel(db, FuelInput{
		VehicleNumber: vehicle.VehicleNumber,
		FuelType:      "diesel",
		Quantity:      50,
		RatePerLitre:  100,
		FilledDate:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Vendor:        "Shell Depot",
	})
	require.NoError(t, err)

	// Spare part linked by vendor_id, with a mismatched display name.
	_, err = AddSparePart(db, SparePartInput{
		VehicleNumber: vehicle.VehicleNumber,
		PartName:      "air filter",
		Cost:          200,
		Quantity:      2,
		Vendor:        "Shell (old name)",
		VendorID:      &vendor.ID,
		ReplacedDate:  time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = CreateVendorPayment(db, VendorPaymentInput{
		VendorID: vendor.ID,
		Amount:   2000,
		PaidOn:   time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	summary, err := SummarizeVendor(db, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, summary.FuelTotal)
	assert.Equal(t, 400.0, summary.SpareTotal)
	assert.Equal(t, 5400.0, summary.TotalOwed)
	assert.Equal(t, 2000.0, summary.PaidTotal)
	assert.Equal(t, 3400.0, summary.Pending)
}

func TestSummarizeVendorUnknown(t *testing.T) {
	db := newTestDB(t)

	_, err := SummarizeVendor(db, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVendorPaymentLifecycle(t *testing.T) {
	db := newTestDB(t)

	vendor, err := AddVendor(db, VendorInput{Name: "City Motors", Category: models.VendorCategorySpare})
	require.NoError(t, err)

	_, err = CreateVendorPayment(db, VendorPaymentInput{VendorID: 999, Amount: 100, PaidOn: time.Now()})
	assert.ErrorIs(t, err, ErrNotFound)

	payment, err := CreateVendorPayment(db, VendorPaymentInput{
		VendorID: vendor.ID,
		Amount:   750,
		PaidOn:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	payments, err := PaymentsByVendor(db, vendor.ID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	require.NoError(t, DeleteVendorPayment(db, payment.ID))

	payments, err = PaymentsByVendor(db, vendor.ID)
	require.NoError(t, err)
	assert.Empty(t, payments)
}
