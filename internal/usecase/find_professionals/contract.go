package find_professionals

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/t1mga/FSP-BookingService/internal/domain"
)

// ProfessionalRepository интерфейс репозитория профессионалов
type ProfessionalRepository interface {
	GetActive(ctx context.Context) ([]*domain.Professional, error)
	GetByIDWithBookings(ctx context.Context, id uuid.UUID) (*domain.Professional, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
