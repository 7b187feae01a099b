package get_professional

import (
	"context"

	"github.com/google/uuid"

	"github.com/t1mga/FSP-BookingService/internal/service/professionals/models"
)

type ProfessionalService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
