package get_client

import (
	"time"

	"github.com/t1mga/FSP-BookingService/internal/service/clients/models"
)

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
