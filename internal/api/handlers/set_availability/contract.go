package set_availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/t1mga/FSP-BookingService/internal/service/professionals/models"
)

type ProfessionalService interface {
	SetAvailability(ctx context.Context, id uuid.UUID, weekday int, startTime, endTime string) (*models.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
