package get_client_bookings

import (
	"time"

	"github.com/t1mga/FSP-BookingService/internal/domain"
	"github.com/t1mga/FSP-BookingService/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	ClientID        string  `json:"clientId"`
	ProfessionalID  string  `json:"professionalId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	OriginAddress   string  `json:"originAddress"`
	OriginLatitude  float64 `json:"originLatitude"`
	OriginLongitude float64 `json:"originLongitude"`
	CreatedAt       string  `json:"createdAt"`
}

// BookingListResponse HTTP response model со списком бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	result := make([]*BookingResponse, len(resp.Bookings))
	for i, booking := range resp.Bookings {
		result[i] = &BookingResponse{
			ID:              booking.ID.String(),
			ClientID:        booking.ClientID.String(),
			ProfessionalID:  booking.ProfessionalID.String(),
			Date:            booking.Date.Format(domain.DateFormat),
			StartTime:       booking.StartTime,
			EndTime:         booking.EndTime,
			DurationMinutes: booking.DurationMinutes,
			Status:          booking.Status,
			OriginAddress:   booking.OriginAddress,
			OriginLatitude:  booking.OriginLatitude,
			OriginLongitude: booking.OriginLongitude,
			CreatedAt:       booking.CreatedAt.Format(time.RFC3339),
		}
	}
	return &BookingListResponse{Bookings: result}
}
