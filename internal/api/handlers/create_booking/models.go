package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/t1mga/FSP-BookingService/internal/domain"
	createBooking "github.com/t1mga/FSP-BookingService/internal/usecase/create_booking"
	"github.com/t1mga/FSP-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientID        string  `json:"clientId"`
	ProfessionalID  string  `json:"professionalId"`
	Date            string  `json:"date"`      // "2026-09-15"
	StartTime       string  `json:"startTime"` // "10:00"
	EndTime         string  `json:"endTime"`   // "11:30"
	OriginAddress   string  `json:"originAddress"`
	OriginLatitude  float64 `json:"originLatitude"`
	OriginLongitude float64 `json:"originLongitude"`
}

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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	clientID, err := uuid.Parse(r.ClientID)
	if err != nil {
		return nil, fmt.Errorf("parse clientId: %w", err)
	}

	professionalID, err := uuid.Parse(r.ProfessionalID)
	if err != nil {
		return nil, fmt.Errorf("parse professionalId: %w", err)
	}

	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("parse date: %w", err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parse startTime: %w", err)
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("parse endTime: %w", err)
	}

	return &createBooking.Request{
		ClientID:        clientID,
		ProfessionalID:  professionalID,
		Date:            date,
		StartTime:       startTime,
		EndTime:         endTime,
		OriginAddress:   r.OriginAddress,
		OriginLatitude:  r.OriginLatitude,
		OriginLongitude: r.OriginLongitude,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID.String(),
		ClientID:        resp.ClientID.String(),
		ProfessionalID:  resp.ProfessionalID.String(),
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		OriginAddress:   resp.OriginAddress,
		OriginLatitude:  resp.OriginLatitude,
		OriginLongitude: resp.OriginLongitude,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
