package find_professionals

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	findProfessionals "github.com/t1mga/FSP-BookingService/internal/usecase/find_professionals"
)

// ProfessionalMatch найденный профессионал в HTTP ответе
type ProfessionalMatch struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Phone           string  `json:"phone"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	ServiceRadiusKm float64 `json:"serviceRadiusKm"`
	DistanceKm      float64 `json:"distanceKm"`
}

// SearchResponse HTTP response model
type SearchResponse struct {
	Professionals []ProfessionalMatch `json:"professionals"`
}

// ParseQuery разбирает query-параметры поиска:
// latitude, longitude, startAt (RFC 3339), durationMinutes
func ParseQuery(query url.Values) (*findProfessionals.Request, error) {
	latitude, err := strconv.ParseFloat(query.Get("latitude"), 64)
	if err != nil {
		return nil, fmt.Errorf("parse latitude: %w", err)
	}

	longitude, err := strconv.ParseFloat(query.Get("longitude"), 64)
	if err != nil {
		return nil, fmt.Errorf("parse longitude: %w", err)
	}

	startAt, err := time.Parse(time.RFC3339, query.Get("startAt"))
	if err != nil {
		return nil, fmt.Errorf("parse startAt: %w", err)
	}

	durationMinutes, err := strconv.Atoi(query.Get("durationMinutes"))
	if err != nil {
		return nil, fmt.Errorf("parse durationMinutes: %w", err)
	}

	return &findProfessionals.Request{
		Latitude:        latitude,
		Longitude:       longitude,
		StartAt:         startAt,
		DurationMinutes: durationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findProfessionals.Response) *SearchResponse {
	matches := make([]ProfessionalMatch, len(resp.Professionals))
	for i, match := range resp.Professionals {
		matches[i] = ProfessionalMatch{
			ID:              match.ID.String(),
			Name:            match.Name,
			Phone:           match.Phone,
			Latitude:        match.Latitude,
			Longitude:       match.Longitude,
			ServiceRadiusKm: match.ServiceRadiusKm,
			DistanceKm:      match.DistanceKm,
		}
	}
	return &SearchResponse{Professionals: matches}
}
