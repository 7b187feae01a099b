package find_professionals

import (
	"context"

	findProfessionals "github.com/t1mga/FSP-BookingService/internal/usecase/find_professionals"
)

type FindProfessionalsUseCase interface {
	Execute(ctx context.Context, req *findProfessionals.Request) (*findProfessionals.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
