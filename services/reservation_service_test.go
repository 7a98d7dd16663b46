package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bistronome/restaurant-app/models"
	"github.com/bistronome/restaurant-app/utils"
)

func validReservation() CreateReservationRequest {
	return CreateReservationRequest{
		FirstName: "Jean",
		LastName:  "Martin",
		Email:     "jean.martin@example.com",
		Phone:     "06 12 34 56 78",
		Date:      "2026-09-15",
		Time:      "19:30",
		Guests:    4,
		Message:   "Table near the window if possible",
	}
}

func TestCreateReservation(t *testing.T) {
	db := setupTestDB(t, "resa_create")
	svc := NewReservationService(db)

	resa, err := svc.Create(validReservation())
	require.NoError(t, err)
	assert.Equal(t, models.ReservationPending, resa.Status)
	assert.Equal(t, "19:30", resa.Time)
	assert.Equal(t, 4, resa.Guests)
	assert.Nil(t, resa.ConfirmedAt)

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateReservationValidation(t *testing.T) {
	db := setupTestDB(t, "resa_validation")
	svc := NewReservationService(db)

	cases := []struct {
		name   string
		mutate func(*CreateReservationRequest)
	}{
		{"short first name", func(r *CreateReservationRequest) { r.FirstName = "J" }},
		{"bad email", func(r *CreateReservationRequest) { r.Email = "not-an-email" }},
		{"short phone", func(r *CreateReservationRequest) { r.Phone = "0612" }},
		{"bad time", func(r *CreateReservationRequest) { r.Time = "7pm" }},
		{"zero guests", func(r *CreateReservationRequest) { r.Guests = 0 }},
		{"too many guests", func(r *CreateReservationRequest) { r.Guests = 21 }},
		{"bad date", func(r *CreateReservationRequest) { r.Date = "15/09/2026" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validReservation()
			tc.mutate(&req)
			_, err := svc.Create(req)
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
		})
	}

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.Zero(t, count)
}

func TestReservationConfirmStampsTime(t *testing.T) {
	db := setupTestDB(t, "resa_confirm")
	svc := NewReservationService(db)

	resa, err := svc.Create(validReservation())
	require.NoError(t, err)

	confirmed, err := svc.UpdateStatus(resa.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, models.ReservationConfirmed, confirmed.Status)
	require.NotNil(t, confirmed.ConfirmedAt)
	stamp := *confirmed.ConfirmedAt

	// Re-confirming keeps the original stamp.
	again, err := svc.UpdateStatus(resa.ID, "confirmed")
	require.NoError(t, err)
	require.NotNil(t, again.ConfirmedAt)
	assert.WithinDuration(t, stamp, *again.ConfirmedAt, time.Second)
}

func TestReservationUpdateStatusErrors(t *testing.T) {
	db := setupTestDB(t, "resa_status_errors")
	svc := NewReservationService(db)

	resa, err := svc.Create(validReservation())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(resa.ID, "maybe")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.UpdateStatus(999, "confirmed")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestListReservationsFilter(t *testing.T) {
	db := setupTestDB(t, "resa_list")
	svc := NewReservationService(db)

	first, err := svc.Create(validReservation())
	require.NoError(t, err)
	req := validReservation()
	req.FirstName = "Claire"
	_, err = svc.Create(req)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(first.ID, "cancelled")
	require.NoError(t, err)

	pending, err := svc.List("pending")
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.List("bogus")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
