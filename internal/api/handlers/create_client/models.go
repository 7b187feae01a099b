package create_client

import (
	"time"

	"github.com/t1mga/FSP-BookingService/internal/service/clients/models"
)

// CreateClientRequest HTTP request model
type CreateClientRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ClientResponse HTTP response model
type ClientResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	CreatedAt string  `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateClientRequest) ToServiceRequest() *models.CreateClientRequest {
	return &models.CreateClientRequest{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ClientResponse) *ClientResponse {
	return &ClientResponse{
		ID:        resp.ID.String(),
		Name:      resp.Name,
		Email:     resp.Email,
		Phone:     resp.Phone,
		Latitude:  resp.Latitude,
		Longitude: resp.Longitude,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
