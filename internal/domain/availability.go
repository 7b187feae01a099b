package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/t1mga/FSP-BookingService/pkg/types"
)

// AvailabilityWindow еженедельное окно доступности профессионала
// У профессионала не более одного окна на день недели
type AvailabilityWindow struct {
	EntityMeta
	ProfessionalID uuid.UUID
	Weekday        time.Weekday
	StartTime      types.TimeString
	EndTime        types.TimeString
}

// NewAvailabilityWindow создает окно доступности с валидацией времён
func NewAvailabilityWindow(
	professionalID uuid.UUID,
	weekday time.Weekday,
	startTime, endTime types.TimeString,
	now time.Time,
) (*AvailabilityWindow, error) {
	if err := validateWindowTimes(startTime, endTime); err != nil {
		return nil, err
	}

	return &AvailabilityWindow{
		EntityMeta:     NewEntityMeta(now),
		ProfessionalID: professionalID,
		Weekday:        weekday,
		StartTime:      startTime,
		EndTime:        endTime,
	}, nil
}

// ContainsRange возвращает true, если интервал [start, end] целиком лежит в окне
// Совпадение с границами окна допустимо
func (w *AvailabilityWindow) ContainsRange(start, end types.TimeString) bool {
	return !start.IsBefore(w.StartTime) && !end.IsAfter(w.EndTime)
}

// UpdateTimes заменяет границы окна
func (w *AvailabilityWindow) UpdateTimes(startTime, endTime types.TimeString) error {
	if err := validateWindowTimes(startTime, endTime); err != nil {
		return err
	}
	w.StartTime = startTime
	w.EndTime = endTime
	return nil
}

func validateWindowTimes(startTime, endTime types.TimeString) error {
	if err := startTime.Validate(); err != nil {
		return err
	}
	if err := endTime.Validate(); err != nil {
		return err
	}
	if !startTime.IsBefore(endTime) {
		return ErrInvalidTimeRange
	}
	return nil
}
