package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/t1mga/FSP-BookingService/internal/domain"
	"github.com/t1mga/FSP-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID        uuid.UUID        // ID клиента
	ProfessionalID  uuid.UUID        // ID профессионала
	Date            time.Time        // Дата бронирования (без времени)
	StartTime       types.TimeString // Время начала ("10:00")
	EndTime         types.TimeString // Время конца ("11:30")
	OriginAddress   string           // Адрес подачи
	OriginLatitude  float64          // Широта точки подачи
	OriginLongitude float64          // Долгота точки подачи
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	ProfessionalID  uuid.UUID
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Status          string
	OriginAddress   string
	OriginLatitude  float64
	OriginLongitude float64
	CreatedAt       time.Time
}

// fromDomainBooking конвертирует доменную модель в ответ use case
func fromDomainBooking(booking *domain.Booking) *Response {
	return &Response{
		ID:              booking.ID,
		ClientID:        booking.ClientID,
		ProfessionalID:  booking.ProfessionalID,
		Date:            booking.Date,
		StartTime:       booking.StartTime,
		EndTime:         booking.EndTime,
		DurationMinutes: booking.DurationMinutes(),
		Status:          string(booking.Status),
		OriginAddress:   booking.OriginAddress,
		OriginLatitude:  booking.OriginLocation.Latitude,
		OriginLongitude: booking.OriginLocation.Longitude,
		CreatedAt:       booking.CreatedAt,
	}
}
