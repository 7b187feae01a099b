package set_availability

import (
	"github.com/t1mga/FSP-BookingService/internal/service/professionals/models"
)

// SetAvailabilityRequest HTTP request model
type SetAvailabilityRequest struct {
	Weekday   int    `json:"weekday"`   // 0 = воскресенье ... 6 = суббота
	StartTime string `json:"startTime"` // "08:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// AvailabilityWindowResponse окно доступности в HTTP ответе
type AvailabilityWindowResponse struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AvailabilityResponse HTTP response model: полное расписание профессионала
type AvailabilityResponse struct {
	ProfessionalID string                       `json:"professionalId"`
	Availability   []AvailabilityWindowResponse `json:"availability"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ProfessionalResponse) *AvailabilityResponse {
	windows := make([]AvailabilityWindowResponse, len(resp.Availability))
	for i, window := range resp.Availability {
		windows[i] = AvailabilityWindowResponse{
			Weekday:   window.Weekday,
			StartTime: window.StartTime,
			EndTime:   window.EndTime,
		}
	}

	return &AvailabilityResponse{
		ProfessionalID: resp.ID.String(),
		Availability:   windows,
	}
}
