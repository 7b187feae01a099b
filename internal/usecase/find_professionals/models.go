package find_professionals

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса поиска профессионалов
type Request struct {
	Latitude        float64   // Широта точки подачи
	Longitude       float64   // Долгота точки подачи
	StartAt         time.Time // Запрошенное время начала (дата + время)
	DurationMinutes int       // Длительность работ в минутах
}

// Match найденный профессионал с расстоянием до точки подачи
type Match struct {
	ID              uuid.UUID
	Name            string
	Phone           string
	Latitude        float64
	Longitude       float64
	ServiceRadiusKm float64
	DistanceKm      float64 // Округлено до 2 знаков
}

// Response модель ответа поиска: профессионалы по возрастанию расстояния
type Response struct {
	Professionals []Match
}
