package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t1mga/FSP-BookingService/internal/domain"
	"github.com/t1mga/FSP-BookingService/pkg/types"
)

var testNow = time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	parsed, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return parsed
}

func newTestBooking(t *testing.T) *domain.Booking {
	t.Helper()
	booking, err := domain.NewBooking(
		uuid.New(), uuid.New(),
		time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC),
		mustTime(t, "10:00"), mustTime(t, "11:00"),
		"Av. Paulista, 1000", -23.5505, -46.6333,
		testNow,
	)
	require.NoError(t, err)
	return booking
}

func TestCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	booking := newTestBooking(t)

	mock.ExpectExec("INSERT INTO bookings").
		WithArgs(
			booking.ID, booking.ClientID, booking.ProfessionalID,
			booking.Date, booking.StartTime, booking.EndTime,
			booking.Status, booking.OriginAddress,
			booking.OriginLocation.Latitude, booking.OriginLocation.Longitude,
			booking.CreatedAt, sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.Create(context.Background(), booking)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ExclusionViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	booking := newTestBooking(t)

	// Срабатывание constraint bookings_no_overlap
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23P01", Constraint: "bookings_no_overlap"})

	_, err = repo.Create(context.Background(), booking)
	assert.ErrorIs(t, err, ErrTimeConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	booking := newTestBooking(t)

	rows := sqlmock.NewRows(bookingColumns).AddRow(
		booking.ID, booking.ClientID, booking.ProfessionalID,
		booking.Date, "10:00:00", "11:00:00",
		string(booking.Status), booking.OriginAddress,
		booking.OriginLocation.Latitude, booking.OriginLocation.Longitude,
		booking.CreatedAt, booking.UpdatedAt,
	)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id =").
		WithArgs(booking.ID).
		WillReturnRows(rows)

	got, err := repo.GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, got.ID)
	assert.Equal(t, "10:00", got.StartTime.String())
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id =").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err = repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasTimeConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	professionalID := uuid.New()
	date := time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC)

	t.Run("conflict exists", func(t *testing.T) {
		mock.ExpectQuery("SELECT 1 FROM bookings").
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

		got, err := repo.HasTimeConflict(context.Background(), professionalID, date,
			mustTime(t, "10:00"), mustTime(t, "11:00"), nil)
		require.NoError(t, err)
		assert.True(t, got)
	})

	t.Run("no conflict", func(t *testing.T) {
		mock.ExpectQuery("SELECT 1 FROM bookings").
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

		got, err := repo.HasTimeConflict(context.Background(), professionalID, date,
			mustTime(t, "11:00"), mustTime(t, "12:00"), nil)
		require.NoError(t, err)
		assert.False(t, got)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	mock.ExpectExec("UPDATE bookings SET status =").
		WithArgs(string(domain.StatusConfirmed), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), id, domain.StatusConfirmed))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	id := uuid.New()

	mock.ExpectExec("UPDATE bookings SET status =").
		WithArgs(string(domain.StatusConfirmed), id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.UpdateStatus(context.Background(), id, domain.StatusConfirmed), ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
