package create_professional

import (
	"time"

	"github.com/t1mga/FSP-BookingService/internal/service/professionals/models"
)

// CreateProfessionalRequest HTTP request model
type CreateProfessionalRequest struct {
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	ServiceRadiusKm float64 `json:"serviceRadiusKm"`
}

// AvailabilityWindowResponse окно доступности в HTTP ответе
type AvailabilityWindowResponse struct {
	Weekday   int    `json:"weekday"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ProfessionalResponse HTTP response model
type ProfessionalResponse struct {
	ID              string                       `json:"id"`
	Name            string                       `json:"name"`
	Email           string                       `json:"email"`
	Phone           string                       `json:"phone"`
	Latitude        float64                      `json:"latitude"`
	Longitude       float64                      `json:"longitude"`
	ServiceRadiusKm float64                      `json:"serviceRadiusKm"`
	Active          bool                         `json:"active"`
	Availability    []AvailabilityWindowResponse `json:"availability"`
	CreatedAt       string                       `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateProfessionalRequest) ToServiceRequest() *models.CreateProfessionalRequest {
	return &models.CreateProfessionalRequest{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Latitude:        r.Latitude,
		Longitude:       r.Longitude,
		ServiceRadiusKm: r.ServiceRadiusKm,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ProfessionalResponse) *ProfessionalResponse {
	windows := make([]AvailabilityWindowResponse, len(resp.Availability))
	for i, window := range resp.Availability {
		windows[i] = AvailabilityWindowResponse{
			Weekday:   window.Weekday,
			StartTime: window.StartTime,
			EndTime:   window.EndTime,
		}
	}

	return &ProfessionalResponse{
		ID:              resp.ID.String(),
		Name:            resp.Name,
		Email:           resp.Email,
		Phone:           resp.Phone,
		Latitude:        resp.Latitude,
		Longitude:       resp.Longitude,
		ServiceRadiusKm: resp.ServiceRadiusKm,
		Active:          resp.Active,
		Availability:    windows,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
