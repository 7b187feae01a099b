package professionals

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/t1mga/FSP-BookingService/internal/domain"
)

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	Create(ctx context.Context, professional *domain.Professional) (*domain.Professional, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
	UpsertAvailability(ctx context.Context, window *domain.AvailabilityWindow) error
	DeleteAvailability(ctx context.Context, professionalID uuid.UUID, weekday time.Weekday) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
