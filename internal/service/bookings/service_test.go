package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t1mga/FSP-BookingService/internal/domain"
	bookingRepo "github.com/t1mga/FSP-BookingService/internal/infra/storage/booking"
	"github.com/t1mga/FSP-BookingService/pkg/ptr"
	"github.com/t1mga/FSP-BookingService/pkg/types"
)

var testNow = time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*domain.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*domain.Booking)}
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) GetByClientID(_ context.Context, clientID uuid.UUID, status *domain.BookingStatus) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, booking := range r.bookings {
		if booking.ClientID != clientID {
			continue
		}
		if status != nil && booking.Status != *status {
			continue
		}
		result = append(result, booking)
	}
	return result, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.BookingStatus) error {
	booking, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	booking.Status = status
	return nil
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	parsed, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return parsed
}

func seedBooking(t *testing.T, repo *fakeBookingRepo, clientID uuid.UUID, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	booking, err := domain.NewBooking(
		clientID, uuid.New(),
		time.Date(2026, 9, 21, 0, 0, 0, 0, time.UTC),
		mustTime(t, "10:00"), mustTime(t, "11:00"),
		"Av. Paulista, 1000", -23.5505, -46.6333,
		testNow,
	)
	require.NoError(t, err)
	booking.Status = status
	repo.bookings[booking.ID] = booking
	return booking
}

func TestConfirm(t *testing.T) {
	repo := newFakeBookingRepo()
	service := NewService(repo, nopLogger{})
	booking := seedBooking(t, repo, uuid.New(), domain.StatusPending)

	resp, err := service.Confirm(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[booking.ID].Status)
}

func TestConfirm_InvalidTransition(t *testing.T) {
	repo := newFakeBookingRepo()
	service := NewService(repo, nopLogger{})

	for _, status := range []domain.BookingStatus{domain.StatusConfirmed, domain.StatusCancelled} {
		booking := seedBooking(t, repo, uuid.New(), status)
		_, err := service.Confirm(context.Background(), booking.ID)
		assert.ErrorIs(t, err, ErrInvalidStateTransition)
		// Статус в хранилище не изменился
		assert.Equal(t, status, repo.bookings[booking.ID].Status)
	}
}

func TestConfirm_NotFound(t *testing.T) {
	service := NewService(newFakeBookingRepo(), nopLogger{})
	_, err := service.Confirm(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel(t *testing.T) {
	repo := newFakeBookingRepo()
	service := NewService(repo, nopLogger{})

	// Отмена допустима и для pending, и для confirmed
	for _, status := range []domain.BookingStatus{domain.StatusPending, domain.StatusConfirmed} {
		booking := seedBooking(t, repo, uuid.New(), status)
		resp, err := service.Cancel(context.Background(), booking.ID)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
	}
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	repo := newFakeBookingRepo()
	service := NewService(repo, nopLogger{})
	booking := seedBooking(t, repo, uuid.New(), domain.StatusCancelled)

	_, err := service.Cancel(context.Background(), booking.ID)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestGetByID(t *testing.T) {
	repo := newFakeBookingRepo()
	service := NewService(repo, nopLogger{})
	booking := seedBooking(t, repo, uuid.New(), domain.StatusPending)

	resp, err := service.GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, resp.ID)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestGetClientBookings(t *testing.T) {
	repo := newFakeBookingRepo()
	service := NewService(repo, nopLogger{})
	clientID := uuid.New()

	seedBooking(t, repo, clientID, domain.StatusPending)
	seedBooking(t, repo, clientID, domain.StatusCancelled)
	seedBooking(t, repo, uuid.New(), domain.StatusPending)

	all, err := service.GetClientBookings(context.Background(), clientID, nil)
	require.NoError(t, err)
	assert.Len(t, all.Bookings, 2)

	pending, err := service.GetClientBookings(context.Background(), clientID, ptr.Ptr("pending"))
	require.NoError(t, err)
	assert.Len(t, pending.Bookings, 1)

	_, err = service.GetClientBookings(context.Background(), clientID, ptr.Ptr("done"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
