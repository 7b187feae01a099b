package domain

import (
	"fmt"
	"math"
)

// EarthRadiusKm радиус Земли для формулы гаверсинуса
const EarthRadiusKm = 6371.0

// Location value object географической точки
// Создается только через NewLocation, после создания не меняется
type Location struct {
	Latitude  float64
	Longitude float64
}

// NewLocation создает локацию с валидацией координат
func NewLocation(latitude, longitude float64) (Location, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return Location{}, fmt.Errorf("%w: lat=%f, lon=%f", ErrInvalidCoordinates, latitude, longitude)
	}
	return Location{Latitude: latitude, Longitude: longitude}, nil
}

// DistanceKmTo возвращает расстояние по большому кругу до другой точки
// Формула гаверсинуса; симметрична, ноль для совпадающих точек
func (l Location) DistanceKmTo(other Location) float64 {
	lat1 := degreesToRadians(l.Latitude)
	lat2 := degreesToRadians(other.Latitude)
	deltaLat := degreesToRadians(other.Latitude - l.Latitude)
	deltaLon := degreesToRadians(other.Longitude - l.Longitude)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// WithinRadiusKm возвращает true, если other находится в радиусе radiusKm
func (l Location) WithinRadiusKm(other Location, radiusKm float64) bool {
	return l.DistanceKmTo(other) <= radiusKm
}

// String реализует fmt.Stringer
func (l Location) String() string {
	return fmt.Sprintf("lat=%.6f, lon=%.6f", l.Latitude, l.Longitude)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
