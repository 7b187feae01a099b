package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProfessional(t *testing.T) *Professional {
	t.Helper()
	professional, err := NewProfessional(
		"João Silva", "joao@example.com", "(11) 98765-4321",
		-23.5505, -46.6333, 50,
		testNow,
	)
	require.NoError(t, err)
	return professional
}

func TestNewProfessional(t *testing.T) {
	professional := newTestProfessional(t)

	assert.NotEqual(t, uuid.Nil, professional.ID)
	assert.True(t, professional.Active)
	assert.Equal(t, "João Silva", professional.Name)
	// Email приводится к нижнему регистру, телефон - к цифрам
	assert.Equal(t, "joao@example.com", professional.Email)
	assert.Equal(t, "11987654321", professional.Phone)
}

func TestNewProfessional_Validation(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		email    string
		phone    string
		radiusKm float64
		wantErr  error
	}{
		{name: "blank name", fullName: "  ", email: "a@b.com", phone: "1234567890", radiusKm: 10, wantErr: ErrInvalidName},
		{name: "name too long", fullName: strings.Repeat("a", 101), email: "a@b.com", phone: "1234567890", radiusKm: 10, wantErr: ErrInvalidName},
		{name: "invalid email", fullName: "Ana", email: "not-an-email", phone: "1234567890", radiusKm: 10, wantErr: ErrInvalidEmail},
		{name: "phone too short", fullName: "Ana", email: "a@b.com", phone: "123456789", radiusKm: 10, wantErr: ErrInvalidPhone},
		{name: "phone too long", fullName: "Ana", email: "a@b.com", phone: "123456789012", radiusKm: 10, wantErr: ErrInvalidPhone},
		{name: "zero radius", fullName: "Ana", email: "a@b.com", phone: "1234567890", radiusKm: 0, wantErr: ErrInvalidServiceRadius},
		{name: "radius above limit", fullName: "Ana", email: "a@b.com", phone: "1234567890", radiusKm: 500.1, wantErr: ErrInvalidServiceRadius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProfessional(tt.fullName, tt.email, tt.phone, 0, 0, tt.radiusKm, testNow)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewProfessional_NormalizesEmail(t *testing.T) {
	professional, err := NewProfessional("Ana", "Ana.Souza@Example.COM", "1234567890", 0, 0, 10, testNow)
	require.NoError(t, err)
	assert.Equal(t, "ana.souza@example.com", professional.Email)
}

func TestProfessional_SetAvailability(t *testing.T) {
	professional := newTestProfessional(t)

	require.NoError(t, professional.SetAvailability(time.Monday, ts(t, "08:00"), ts(t, "18:00"), testNow))
	require.Len(t, professional.Availability, 1)

	// Повторная установка на тот же день заменяет границы, а не добавляет окно
	require.NoError(t, professional.SetAvailability(time.Monday, ts(t, "09:00"), ts(t, "17:00"), testNow))
	require.Len(t, professional.Availability, 1)
	window := professional.AvailabilityFor(time.Monday)
	require.NotNil(t, window)
	assert.Equal(t, "09:00", window.StartTime.String())
	assert.Equal(t, "17:00", window.EndTime.String())

	// Некорректное окно отклоняется
	assert.Error(t, professional.SetAvailability(time.Tuesday, ts(t, "18:00"), ts(t, "08:00"), testNow))
}

func TestProfessional_RemoveAvailability(t *testing.T) {
	professional := newTestProfessional(t)
	require.NoError(t, professional.SetAvailability(time.Monday, ts(t, "08:00"), ts(t, "18:00"), testNow))

	assert.True(t, professional.RemoveAvailability(time.Monday))
	assert.Nil(t, professional.AvailabilityFor(time.Monday))
	assert.False(t, professional.RemoveAvailability(time.Monday))
}

func TestProfessional_IsAvailableAt(t *testing.T) {
	// 2026-09-21 - понедельник
	monday := func(clock string) time.Time {
		parsed := ts(t, clock)
		return time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC).
			Add(time.Duration(parsed.Minutes()) * time.Minute)
	}

	setup := func(t *testing.T) *Professional {
		professional := newTestProfessional(t)
		require.NoError(t, professional.SetAvailability(time.Monday, ts(t, "08:00"), ts(t, "18:00"), testNow))
		return professional
	}

	t.Run("inside window", func(t *testing.T) {
		assert.True(t, setup(t).IsAvailableAt(monday("10:00"), 60))
	})

	t.Run("touching window boundaries", func(t *testing.T) {
		professional := setup(t)
		assert.True(t, professional.IsAvailableAt(monday("08:00"), 60))
		assert.True(t, professional.IsAvailableAt(monday("17:00"), 60))
	})

	t.Run("starts before window", func(t *testing.T) {
		assert.False(t, setup(t).IsAvailableAt(monday("07:30"), 60))
	})

	t.Run("ends after window", func(t *testing.T) {
		assert.False(t, setup(t).IsAvailableAt(monday("17:01"), 60))
	})

	t.Run("no window for weekday", func(t *testing.T) {
		tuesday := monday("10:00").AddDate(0, 0, 1)
		assert.False(t, setup(t).IsAvailableAt(tuesday, 60))
	})

	t.Run("inactive professional", func(t *testing.T) {
		professional := setup(t)
		professional.Deactivate()
		assert.False(t, professional.IsAvailableAt(monday("10:00"), 60))
	})

	t.Run("slot crossing midnight", func(t *testing.T) {
		professional := setup(t)
		require.NoError(t, professional.SetAvailability(time.Monday, ts(t, "08:00"), ts(t, "23:59"), testNow))
		assert.False(t, professional.IsAvailableAt(monday("23:00"), 120))
	})

	t.Run("conflicting booking", func(t *testing.T) {
		professional := setup(t)
		booking, err := NewBooking(uuid.New(), professional.ID,
			time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC),
			ts(t, "10:00"), ts(t, "11:00"),
			"Rua A, 1", 0, 0, testNow)
		require.NoError(t, err)
		professional.AddBooking(booking)

		assert.False(t, professional.IsAvailableAt(monday("10:30"), 60))
		// Слот, граничащий с бронированием, допустим (полуоткрытые интервалы)
		assert.True(t, professional.IsAvailableAt(monday("11:00"), 60))
		assert.True(t, professional.IsAvailableAt(monday("09:00"), 60))
	})

	t.Run("cancelled booking ignored", func(t *testing.T) {
		professional := setup(t)
		booking, err := NewBooking(uuid.New(), professional.ID,
			time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC),
			ts(t, "10:00"), ts(t, "11:00"),
			"Rua A, 1", 0, 0, testNow)
		require.NoError(t, err)
		require.NoError(t, booking.Cancel())
		professional.AddBooking(booking)

		assert.True(t, professional.IsAvailableAt(monday("10:30"), 60))
	})

	t.Run("booking on another date ignored", func(t *testing.T) {
		professional := setup(t)
		booking, err := NewBooking(uuid.New(), professional.ID,
			time.Date(2026, 9, 28, 0, 0, 0, 0, time.UTC),
			ts(t, "10:00"), ts(t, "11:00"),
			"Rua A, 1", 0, 0, testNow)
		require.NoError(t, err)
		professional.AddBooking(booking)

		assert.True(t, professional.IsAvailableAt(monday("10:30"), 60))
	})
}
