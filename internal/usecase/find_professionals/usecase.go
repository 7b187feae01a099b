package find_professionals

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/t1mga/FSP-BookingService/internal/domain"
)

// UseCase use case поиска доступных профессионалов рядом с точкой подачи
// Чистый запрос по снимку данных: ничего не изменяет, допускает устаревание -
// найденный слот обязан перепроверяться workflow создания бронирования
type UseCase struct {
	professionalRepo ProfessionalRepository
	timeProvider     TimeProvider
	logger           Logger
}

// candidate профессионал, прошедший фильтры, с неокруглённым расстоянием
type candidate struct {
	professional *domain.Professional
	distanceKm   float64
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(professionalRepo ProfessionalRepository, logger Logger) *UseCase {
	return &UseCase{
		professionalRepo: professionalRepo,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет поиск:
// 1. Валидация запроса и правила заблаговременности (минимум 30 минут)
// 2. Снимок активных профессионалов
// 3. Фильтр по расстоянию против радиуса обслуживания каждого профессионала
// 4. Глубокая проверка доступности (окно + конфликты с бронированиями)
// 5. Сортировка по возрастанию расстояния, при равенстве - по ID
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindProfessionals: lat=%f, lon=%f, startAt=%s, duration=%d",
		req.Latitude, req.Longitude, req.StartAt.Format(time.RFC3339), req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindProfessionals: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if !req.StartAt.After(now.Add(domain.MinLeadTimeMinutes * time.Minute)) {
		uc.logger.Warn("FindProfessionals: requested start %s violates lead time",
			req.StartAt.Format(time.RFC3339))
		return nil, ErrTooSoon
	}

	origin, err := domain.NewLocation(req.Latitude, req.Longitude)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	professionals, err := uc.professionalRepo.GetActive(ctx)
	if err != nil {
		uc.logger.Error("FindProfessionals: failed to get active professionals: %v", err)
		return nil, fmt.Errorf("%w: failed to get active professionals: %v", ErrInternal, err)
	}

	candidates := make([]candidate, 0)

	for _, professional := range professionals {
		// Фильтр по радиусу использует неокруглённое расстояние
		distance := origin.DistanceKmTo(professional.Location)
		if distance > professional.ServiceRadiusKm {
			continue
		}

		// Глубокая проверка: загружаем профессионала с окнами и бронированиями
		loaded, err := uc.professionalRepo.GetByIDWithBookings(ctx, professional.ID)
		if err != nil {
			uc.logger.Error("FindProfessionals: failed to load professional id=%s: %v", professional.ID, err)
			return nil, fmt.Errorf("%w: failed to load professional: %v", ErrInternal, err)
		}

		if !loaded.IsAvailableAt(req.StartAt, req.DurationMinutes) {
			continue
		}

		candidates = append(candidates, candidate{professional: loaded, distanceKm: distance})
	}

	// Стабильный порядок: по расстоянию, при равенстве - по ID
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].distanceKm != candidates[j].distanceKm {
			return candidates[i].distanceKm < candidates[j].distanceKm
		}
		return candidates[i].professional.ID.String() < candidates[j].professional.ID.String()
	})

	matches := make([]Match, len(candidates))
	for i, c := range candidates {
		matches[i] = Match{
			ID:              c.professional.ID,
			Name:            c.professional.Name,
			Phone:           c.professional.Phone,
			Latitude:        c.professional.Location.Latitude,
			Longitude:       c.professional.Location.Longitude,
			ServiceRadiusKm: c.professional.ServiceRadiusKm,
			DistanceKm:      roundKm(c.distanceKm),
		}
	}

	uc.logger.Info("FindProfessionals: %d of %d active professionals matched",
		len(matches), len(professionals))

	return &Response{Professionals: matches}, nil
}

// roundKm округляет расстояние до 2 знаков для выдачи
func roundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
