package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"github.com/t1mga/FSP-BookingService/pkg/types"
)

// Professional профессионал выездного обслуживания
// Агрегат: владеет набором окон доступности (не более одного на день недели)
// и загруженными неотменёнными бронированиями, по которым проверяются конфликты
type Professional struct {
	EntityMeta
	Name            string
	Email           string
	Phone           string
	Location        Location
	ServiceRadiusKm float64
	Active          bool
	Availability    []*AvailabilityWindow
	Bookings        []*Booking
}

// NewProfessional создает активного профессионала с валидацией всех полей
func NewProfessional(name, email, phone string, latitude, longitude, serviceRadiusKm float64, now time.Time) (*Professional, error) {
	normName, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	normEmail, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	normPhone, err := normalizePhone(phone)
	if err != nil {
		return nil, err
	}
	location, err := NewLocation(latitude, longitude)
	if err != nil {
		return nil, err
	}
	if serviceRadiusKm <= 0 || serviceRadiusKm > MaxServiceRadiusKm {
		return nil, fmt.Errorf("%w: got %f", ErrInvalidServiceRadius, serviceRadiusKm)
	}

	return &Professional{
		EntityMeta:      NewEntityMeta(now),
		Name:            normName,
		Email:           normEmail,
		Phone:           normPhone,
		Location:        location,
		ServiceRadiusKm: serviceRadiusKm,
		Active:          true,
	}, nil
}

// SetAvailability добавляет окно доступности на день недели
// Если окно на этот день уже есть, его границы заменяются
func (p *Professional) SetAvailability(weekday time.Weekday, startTime, endTime types.TimeString, now time.Time) error {
	if existing := p.AvailabilityFor(weekday); existing != nil {
		return existing.UpdateTimes(startTime, endTime)
	}

	window, err := NewAvailabilityWindow(p.ID, weekday, startTime, endTime, now)
	if err != nil {
		return err
	}
	p.Availability = append(p.Availability, window)
	return nil
}

// RemoveAvailability удаляет окно доступности на день недели
// Возвращает false, если окна на этот день не было
func (p *Professional) RemoveAvailability(weekday time.Weekday) bool {
	for i, window := range p.Availability {
		if window.Weekday == weekday {
			p.Availability = append(p.Availability[:i], p.Availability[i+1:]...)
			return true
		}
	}
	return false
}

// AvailabilityFor возвращает окно доступности для дня недели или nil
func (p *Professional) AvailabilityFor(weekday time.Weekday) *AvailabilityWindow {
	for _, window := range p.Availability {
		if window.Weekday == weekday {
			return window
		}
	}
	return nil
}

// IsAvailableAt проверяет доступность профессионала для слота
// заданной длительности, начинающегося в start:
// 1. Неактивный профессионал недоступен
// 2. Слот должен целиком помещаться в окно доступности на день недели
//    (касание границ окна допустимо, выход за границу - нет)
// 3. Слот не должен пересекаться с неотменёнными бронированиями на ту же дату
func (p *Professional) IsAvailableAt(start time.Time, durationMinutes int) bool {
	if !p.Active {
		return false
	}

	window := p.AvailabilityFor(start.Weekday())
	if window == nil {
		return false
	}

	slotStart := types.NewTimeString(start)
	slotEnd, err := slotStart.AddMinutes(durationMinutes)
	if err != nil {
		// Слот выходит за пределы суток - окно через полночь не поддерживается
		return false
	}

	if !window.ContainsRange(slotStart, slotEnd) {
		return false
	}

	for _, booking := range p.Bookings {
		if booking.IsCancelled() {
			continue
		}
		if !SameDate(booking.Date, start) {
			continue
		}
		if TimeRangesOverlap(slotStart, slotEnd, booking.StartTime, booking.EndTime) {
			return false
		}
	}

	return true
}

// AddBooking добавляет бронирование в загруженный агрегат
func (p *Professional) AddBooking(booking *Booking) {
	p.Bookings = append(p.Bookings, booking)
}

// Activate включает профессионала в выдачу поиска
func (p *Professional) Activate() {
	p.Active = true
}

// Deactivate исключает профессионала из выдачи поиска
func (p *Professional) Deactivate() {
	p.Active = false
}

func normalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || len([]rune(trimmed)) > MaxNameLength {
		return "", ErrInvalidName
	}
	return trimmed, nil
}

func normalizeEmail(email string) (string, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "", ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", ErrInvalidEmail
	}
	return strings.ToLower(trimmed), nil
}

func normalizePhone(phone string) (string, error) {
	var digits strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	normalized := digits.String()
	if len(normalized) < MinPhoneDigits || len(normalized) > MaxPhoneDigits {
		return "", ErrInvalidPhone
	}
	return normalized, nil
}
