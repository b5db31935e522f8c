package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotesByMonth(t *testing.T) {
	db := newTestDB(t)
	vehicle, _, _ := seedFleet(t, db)

	dates := []time.Time{
		time.Date(2024, time.May, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.June, 28, 12, 0, 0, 0, time.UTC),
		time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		_, err := AddVehicleNote(db, VehicleNoteInput{
			VehicleID: vehicle.ID,
			Note:      "service note",
			NoteDate:  d,
		})
		require.NoError(t, err, "note %d", i)
	}

	june, err := NotesByMonth(db, vehicle.ID, 2024, time.June)
	require.NoError(t, err)
	require.Len(t, june, 2)
	assert.True(t, june[0].NoteDate.Before(june[1].NoteDate))

	august, err := NotesByMonth(db, vehicle.ID, 2024, time.August)
	require.NoError(t, err)
	assert.Empty(t, august)

	other, err := NotesByMonth(db, 999, 2024, time.June)
	require.NoError(t, err)
	assert.Empty(t, other)
}
