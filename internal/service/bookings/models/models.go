package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/t1mga/FSP-BookingService/internal/domain"
)

// BookingResponse представление бронирования для вызывающего слоя
type BookingResponse struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	ProfessionalID  uuid.UUID
	Date            time.Time
	StartTime       string
	EndTime         string
	DurationMinutes int
	Status          string
	OriginAddress   string
	OriginLatitude  float64
	OriginLongitude float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse
}

// FromDomainBooking конвертирует доменную модель в response
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              booking.ID,
		ClientID:        booking.ClientID,
		ProfessionalID:  booking.ProfessionalID,
		Date:            booking.Date,
		StartTime:       booking.StartTime.String(),
		EndTime:         booking.EndTime.String(),
		DurationMinutes: booking.DurationMinutes(),
		Status:          string(booking.Status),
		OriginAddress:   booking.OriginAddress,
		OriginLatitude:  booking.OriginLocation.Latitude,
		OriginLongitude: booking.OriginLocation.Longitude,
		CreatedAt:       booking.CreatedAt,
		UpdatedAt:       booking.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, booking := range bookings {
		result[i] = FromDomainBooking(booking)
	}
	return &BookingListResponse{Bookings: result}
}
