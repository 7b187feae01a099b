package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/t1mga/FSP-BookingService/internal/domain"
)

// CreateClientRequest запрос на регистрацию клиента
type CreateClientRequest struct {
	Name      string
	Email     string
	Phone     string
	Latitude  float64
	Longitude float64
}

// ClientResponse представление клиента для вызывающего слоя
type ClientResponse struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
}

// FromDomainClient конвертирует доменную модель в response
func FromDomainClient(client *domain.Client) *ClientResponse {
	return &ClientResponse{
		ID:        client.ID,
		Name:      client.Name,
		Email:     client.Email,
		Phone:     client.Phone,
		Latitude:  client.Location.Latitude,
		Longitude: client.Location.Longitude,
		CreatedAt: client.CreatedAt,
	}
}
