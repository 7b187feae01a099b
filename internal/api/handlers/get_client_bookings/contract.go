package get_client_bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/t1mga/FSP-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetClientBookings(ctx context.Context, clientID uuid.UUID, status *string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
