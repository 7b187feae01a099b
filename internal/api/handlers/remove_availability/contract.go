package remove_availability

import (
	"context"

	"github.com/google/uuid"
)

type ProfessionalService interface {
	RemoveAvailability(ctx context.Context, id uuid.UUID, weekday int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
