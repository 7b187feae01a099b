package create_booking

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest валидирует входные данные запроса
// Инварианты сущности (порядок времён, длительность, будущая дата, адрес,
// координаты) проверяет доменный конструктор - здесь только форма запроса
func validateRequest(req *Request) error {
	if req.ClientID == uuid.Nil {
		return fmt.Errorf("%w: clientId is required", ErrInvalidInput)
	}

	if req.ProfessionalID == uuid.Nil {
		return fmt.Errorf("%w: professionalId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	return nil
}
