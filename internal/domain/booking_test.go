package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)

func newTestBooking(t *testing.T) *Booking {
	t.Helper()
	booking, err := NewBooking(
		uuid.New(), uuid.New(),
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		ts(t, "10:00"), ts(t, "11:30"),
		"Av. Paulista, 1000", -23.5505, -46.6333,
		testNow,
	)
	require.NoError(t, err)
	return booking
}

func TestNewBooking(t *testing.T) {
	booking := newTestBooking(t)

	assert.NotEqual(t, uuid.Nil, booking.ID)
	assert.Equal(t, StatusPending, booking.Status)
	assert.Equal(t, 90, booking.DurationMinutes())
	assert.Equal(t, "Av. Paulista, 1000", booking.OriginAddress)
	// Компонент времени даты обнулён
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), booking.Date)
}

func TestNewBooking_Invariants(t *testing.T) {
	clientID, professionalID := uuid.New(), uuid.New()
	tomorrow := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		date      time.Time
		startTime string
		endTime   string
		address   string
		latitude  float64
		longitude float64
		wantErr   error
	}{
		{
			name: "date today", date: testNow,
			startTime: "10:00", endTime: "11:00",
			address: "Rua A, 1", latitude: 0, longitude: 0,
			wantErr: ErrDateNotInFuture,
		},
		{
			name: "date in the past", date: testNow.AddDate(0, 0, -1),
			startTime: "10:00", endTime: "11:00",
			address: "Rua A, 1", latitude: 0, longitude: 0,
			wantErr: ErrDateNotInFuture,
		},
		{
			name: "start equals end", date: tomorrow,
			startTime: "10:00", endTime: "10:00",
			address: "Rua A, 1", latitude: 0, longitude: 0,
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "start after end", date: tomorrow,
			startTime: "11:00", endTime: "10:00",
			address: "Rua A, 1", latitude: 0, longitude: 0,
			wantErr: ErrInvalidTimeRange,
		},
		{
			name: "too short", date: tomorrow,
			startTime: "10:00", endTime: "10:29",
			address: "Rua A, 1", latitude: 0, longitude: 0,
			wantErr: ErrDurationOutOfRange,
		},
		{
			name: "too long", date: tomorrow,
			startTime: "08:00", endTime: "20:01",
			address: "Rua A, 1", latitude: 0, longitude: 0,
			wantErr: ErrDurationOutOfRange,
		},
		{
			name: "blank address", date: tomorrow,
			startTime: "10:00", endTime: "11:00",
			address: "   ", latitude: 0, longitude: 0,
			wantErr: ErrInvalidOriginAddress,
		},
		{
			name: "address too long", date: tomorrow,
			startTime: "10:00", endTime: "11:00",
			address: strings.Repeat("a", 201), latitude: 0, longitude: 0,
			wantErr: ErrInvalidOriginAddress,
		},
		{
			name: "invalid coordinates", date: tomorrow,
			startTime: "10:00", endTime: "11:00",
			address: "Rua A, 1", latitude: 91, longitude: 0,
			wantErr: ErrInvalidCoordinates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBooking(
				clientID, professionalID, tt.date,
				ts(t, tt.startTime), ts(t, tt.endTime),
				tt.address, tt.latitude, tt.longitude,
				testNow,
			)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewBooking_BoundaryDurations(t *testing.T) {
	tomorrow := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	// Ровно 30 минут и ровно 12 часов допустимы
	_, err := NewBooking(uuid.New(), uuid.New(), tomorrow,
		ts(t, "10:00"), ts(t, "10:30"), "Rua A, 1", 0, 0, testNow)
	assert.NoError(t, err)

	_, err = NewBooking(uuid.New(), uuid.New(), tomorrow,
		ts(t, "08:00"), ts(t, "20:00"), "Rua A, 1", 0, 0, testNow)
	assert.NoError(t, err)
}

func TestNewBooking_TrimsAddress(t *testing.T) {
	tomorrow := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	booking, err := NewBooking(uuid.New(), uuid.New(), tomorrow,
		ts(t, "10:00"), ts(t, "11:00"), "  Rua A, 1  ", 0, 0, testNow)
	require.NoError(t, err)
	assert.Equal(t, "Rua A, 1", booking.OriginAddress)
}

func TestBooking_StateMachine(t *testing.T) {
	t.Run("pending to confirmed", func(t *testing.T) {
		booking := newTestBooking(t)
		require.NoError(t, booking.Confirm())
		assert.Equal(t, StatusConfirmed, booking.Status)
	})

	t.Run("pending to cancelled", func(t *testing.T) {
		booking := newTestBooking(t)
		require.NoError(t, booking.Cancel())
		assert.Equal(t, StatusCancelled, booking.Status)
		assert.True(t, booking.IsCancelled())
	})

	t.Run("confirmed to cancelled", func(t *testing.T) {
		booking := newTestBooking(t)
		require.NoError(t, booking.Confirm())
		require.NoError(t, booking.Cancel())
		assert.Equal(t, StatusCancelled, booking.Status)
	})

	t.Run("confirm confirmed fails", func(t *testing.T) {
		booking := newTestBooking(t)
		require.NoError(t, booking.Confirm())
		assert.ErrorIs(t, booking.Confirm(), ErrInvalidStateTransition)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		booking := newTestBooking(t)
		require.NoError(t, booking.Cancel())
		assert.ErrorIs(t, booking.Cancel(), ErrInvalidStateTransition)
		assert.ErrorIs(t, booking.Confirm(), ErrInvalidStateTransition)
	})
}

func TestBooking_Reschedule(t *testing.T) {
	booking := newTestBooking(t)
	newDate := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)

	require.NoError(t, booking.Reschedule(newDate, ts(t, "14:00"), ts(t, "15:00"), testNow))
	assert.Equal(t, newDate, booking.Date)
	assert.Equal(t, "14:00", booking.StartTime.String())

	// Подтверждённое бронирование переносить нельзя
	require.NoError(t, booking.Confirm())
	assert.ErrorIs(t,
		booking.Reschedule(newDate, ts(t, "16:00"), ts(t, "17:00"), testNow),
		ErrInvalidStateTransition)
}

func TestBooking_StartAt(t *testing.T) {
	booking := newTestBooking(t)
	assert.Equal(t, time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC), booking.StartAt())
}

func TestParseBookingStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "cancelled"} {
		status, ok := ParseBookingStatus(valid)
		assert.True(t, ok)
		assert.Equal(t, BookingStatus(valid), status)
	}

	_, ok := ParseBookingStatus("done")
	assert.False(t, ok)
}
