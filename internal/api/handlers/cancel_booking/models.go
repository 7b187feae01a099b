package cancel_booking

import (
	"time"

	"github.com/t1mga/FSP-BookingService/internal/domain"
	"github.com/t1mga/FSP-BookingService/internal/service/bookings/models"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string `json:"id"`
	ClientID        string `json:"clientId"`
	ProfessionalID  string `json:"professionalId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
	UpdatedAt       string `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID.String(),
		ClientID:        resp.ClientID.String(),
		ProfessionalID:  resp.ProfessionalID.String(),
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime,
		EndTime:         resp.EndTime,
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
