package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/t1mga/FSP-BookingService/internal/domain"
)

// CreateProfessionalRequest запрос на регистрацию профессионала
type CreateProfessionalRequest struct {
	Name            string
	Email           string
	Phone           string
	Latitude        float64
	Longitude       float64
	ServiceRadiusKm float64
}

// AvailabilityWindowResponse представление окна доступности
type AvailabilityWindowResponse struct {
	Weekday   int    // 0 = воскресенье ... 6 = суббота
	StartTime string // "08:00"
	EndTime   string // "18:00"
}

// ProfessionalResponse представление профессионала для вызывающего слоя
type ProfessionalResponse struct {
	ID              uuid.UUID
	Name            string
	Email           string
	Phone           string
	Latitude        float64
	Longitude       float64
	ServiceRadiusKm float64
	Active          bool
	Availability    []AvailabilityWindowResponse
	CreatedAt       time.Time
}

// FromDomainProfessional конвертирует доменную модель в response
func FromDomainProfessional(professional *domain.Professional) *ProfessionalResponse {
	windows := make([]AvailabilityWindowResponse, len(professional.Availability))
	for i, window := range professional.Availability {
		windows[i] = AvailabilityWindowResponse{
			Weekday:   int(window.Weekday),
			StartTime: window.StartTime.String(),
			EndTime:   window.EndTime.String(),
		}
	}

	return &ProfessionalResponse{
		ID:              professional.ID,
		Name:            professional.Name,
		Email:           professional.Email,
		Phone:           professional.Phone,
		Latitude:        professional.Location.Latitude,
		Longitude:       professional.Location.Longitude,
		ServiceRadiusKm: professional.ServiceRadiusKm,
		Active:          professional.Active,
		Availability:    windows,
		CreatedAt:       professional.CreatedAt,
	}
}
