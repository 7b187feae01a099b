package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/t1mga/FSP-BookingService/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// allowedTransitions допустимые переходы статусов
// pending → confirmed, pending → cancelled, confirmed → cancelled; cancelled терминален
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: {},
}

// CanTransitionTo проверяет допустимость перехода статуса
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ParseBookingStatus парсит статус из строки
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// Booking бронирование выезда профессионала к клиенту
// Ссылается на клиента и профессионала только по идентификаторам
type Booking struct {
	EntityMeta
	ClientID       uuid.UUID
	ProfessionalID uuid.UUID
	Date           time.Time // календарная дата, компонент времени обнулён
	StartTime      types.TimeString
	EndTime        types.TimeString
	Status         BookingStatus
	OriginAddress  string
	OriginLocation Location
	UpdatedAt      time.Time
}

// NewBooking создает бронирование со статусом pending
// Все инварианты сущности проверяются здесь: будущая дата, порядок времён,
// длительность в [30 мин, 12 ч], непустой адрес до 200 символов, валидные координаты
func NewBooking(
	clientID, professionalID uuid.UUID,
	date time.Time,
	startTime, endTime types.TimeString,
	originAddress string,
	originLat, originLon float64,
	now time.Time,
) (*Booking, error) {
	if err := validateBookingDate(date, now); err != nil {
		return nil, err
	}
	if err := ValidateBookingTimes(startTime, endTime); err != nil {
		return nil, err
	}

	address, err := normalizeOriginAddress(originAddress)
	if err != nil {
		return nil, err
	}

	origin, err := NewLocation(originLat, originLon)
	if err != nil {
		return nil, err
	}

	return &Booking{
		EntityMeta:     NewEntityMeta(now),
		ClientID:       clientID,
		ProfessionalID: professionalID,
		Date:           DateOnly(date),
		StartTime:      startTime,
		EndTime:        endTime,
		Status:         StatusPending,
		OriginAddress:  address,
		OriginLocation: origin,
	}, nil
}

// Confirm переводит бронирование в статус confirmed
// Подтвердить можно только pending бронирование
func (b *Booking) Confirm() error {
	if !b.Status.CanTransitionTo(StatusConfirmed) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStateTransition, b.Status, StatusConfirmed)
	}
	b.Status = StatusConfirmed
	return nil
}

// Cancel переводит бронирование в статус cancelled
// Повторная отмена является ошибкой
func (b *Booking) Cancel() error {
	if !b.Status.CanTransitionTo(StatusCancelled) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStateTransition, b.Status, StatusCancelled)
	}
	b.Status = StatusCancelled
	return nil
}

// Reschedule меняет дату и время бронирования
// Разрешено только для pending бронирований
func (b *Booking) Reschedule(date time.Time, startTime, endTime types.TimeString, now time.Time) error {
	if b.Status != StatusPending {
		return fmt.Errorf("%w: only pending bookings can be rescheduled", ErrInvalidStateTransition)
	}
	if err := validateBookingDate(date, now); err != nil {
		return err
	}
	if err := ValidateBookingTimes(startTime, endTime); err != nil {
		return err
	}

	b.Date = DateOnly(date)
	b.StartTime = startTime
	b.EndTime = endTime
	return nil
}

// DurationMinutes длительность бронирования в минутах
func (b *Booking) DurationMinutes() int {
	return b.StartTime.MinutesUntil(b.EndTime)
}

// StartAt момент начала бронирования (дата + время начала)
func (b *Booking) StartAt() time.Time {
	return b.Date.Add(time.Duration(b.StartTime.Minutes()) * time.Minute)
}

// IsCancelled возвращает true для отменённого бронирования
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// ValidateBookingTimes проверяет порядок времён и длительность
func ValidateBookingTimes(startTime, endTime types.TimeString) error {
	if err := startTime.Validate(); err != nil {
		return err
	}
	if err := endTime.Validate(); err != nil {
		return err
	}
	if !startTime.IsBefore(endTime) {
		return ErrInvalidTimeRange
	}

	duration := startTime.MinutesUntil(endTime)
	if duration < MinBookingDurationMinutes || duration > MaxBookingDurationMinutes {
		return fmt.Errorf("%w: got %d minutes", ErrDurationOutOfRange, duration)
	}
	return nil
}

// validateBookingDate требует дату строго позже сегодняшней
func validateBookingDate(date time.Time, now time.Time) error {
	if !DateOnly(date).After(DateOnly(now)) {
		return ErrDateNotInFuture
	}
	return nil
}

// normalizeOriginAddress обрезает пробелы и проверяет ограничения адреса
func normalizeOriginAddress(address string) (string, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" || len([]rune(trimmed)) > MaxOriginAddressLength {
		return "", ErrInvalidOriginAddress
	}
	return trimmed, nil
}
