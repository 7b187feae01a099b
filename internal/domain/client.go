package domain

import "time"

// Client клиент, от имени которого создаются бронирования
type Client struct {
	EntityMeta
	Name     string
	Email    string
	Phone    string
	Location Location
}

// NewClient создает клиента с валидацией всех полей
func NewClient(name, email, phone string, latitude, longitude float64, now time.Time) (*Client, error) {
	normName, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	normEmail, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	normPhone, err := normalizePhone(phone)
	if err != nil {
		return nil, err
	}
	location, err := NewLocation(latitude, longitude)
	if err != nil {
		return nil, err
	}

	return &Client{
		EntityMeta: NewEntityMeta(now),
		Name:       normName,
		Email:      normEmail,
		Phone:      normPhone,
		Location:   location,
	}, nil
}
