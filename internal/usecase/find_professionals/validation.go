package find_professionals

import (
	"fmt"

	"github.com/t1mga/FSP-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Latitude < -90 || req.Latitude > 90 {
		return fmt.Errorf("%w: latitude must be in [-90, 90]", ErrInvalidInput)
	}

	if req.Longitude < -180 || req.Longitude > 180 {
		return fmt.Errorf("%w: longitude must be in [-180, 180]", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if req.DurationMinutes < domain.MinSearchDurationMinutes || req.DurationMinutes > domain.MaxSearchDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSearchDurationMinutes, domain.MaxSearchDurationMinutes)
	}

	return nil
}
