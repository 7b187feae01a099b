package set_active

import (
	"context"

	"github.com/google/uuid"
)

type ProfessionalService interface {
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
