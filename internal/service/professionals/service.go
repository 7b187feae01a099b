package professionals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/t1mga/FSP-BookingService/internal/domain"
	professionalRepo "github.com/t1mga/FSP-BookingService/internal/infra/storage/professional"
	"github.com/t1mga/FSP-BookingService/internal/service/professionals/models"
	"github.com/t1mga/FSP-BookingService/pkg/types"
)

// Service сервис для работы с профессионалами и их окнами доступности
type Service struct {
	professionalRepo ProfessionalRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса профессионалов
func NewService(professionalRepo ProfessionalRepository, logger Logger) *Service {
	return &Service{
		professionalRepo: professionalRepo,
		logger:           logger,
	}
}

// Create регистрирует нового профессионала
// Валидация полей (имя, email, телефон, координаты, радиус) в доменном конструкторе
func (s *Service) Create(ctx context.Context, req *models.CreateProfessionalRequest) (*models.ProfessionalResponse, error) {
	s.logger.Info("Create: registering professional email=%s", req.Email)

	professional, err := domain.NewProfessional(
		req.Name, req.Email, req.Phone,
		req.Latitude, req.Longitude, req.ServiceRadiusKm,
		time.Now(),
	)
	if err != nil {
		s.logger.Warn("Create: invalid professional data: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	created, err := s.professionalRepo.Create(ctx, professional)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrDuplicateEmail) {
			s.logger.Warn("Create: email %s already registered", req.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: professional id=%s registered", created.ID)
	return models.FromDomainProfessional(created), nil
}

// GetByID получает профессионала с окнами доступности
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ProfessionalResponse, error) {
	s.logger.Info("GetByID: fetching professional id=%s", id)

	professional, err := s.getProfessional(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	return models.FromDomainProfessional(professional), nil
}

// SetAvailability устанавливает окно доступности на день недели
// Если окно на этот день уже есть, его границы заменяются
func (s *Service) SetAvailability(ctx context.Context, id uuid.UUID, weekday int, startTime, endTime string) (*models.ProfessionalResponse, error) {
	s.logger.Info("SetAvailability: professional=%s, weekday=%d, window=%s-%s", id, weekday, startTime, endTime)

	if weekday < 0 || weekday > 6 {
		return nil, fmt.Errorf("%w: weekday must be between 0 (Sunday) and 6 (Saturday)", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(startTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(endTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	professional, err := s.getProfessional(ctx, id, "SetAvailability")
	if err != nil {
		return nil, err
	}

	if err := professional.SetAvailability(time.Weekday(weekday), start, end, time.Now()); err != nil {
		s.logger.Warn("SetAvailability: invalid window for professional=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	window := professional.AvailabilityFor(time.Weekday(weekday))
	if err := s.professionalRepo.UpsertAvailability(ctx, window); err != nil {
		s.logger.Error("SetAvailability: repository error for professional=%s: %v", id, err)
		return nil, fmt.Errorf("%w: SetAvailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetAvailability: window set for professional=%s, weekday=%d", id, weekday)
	return models.FromDomainProfessional(professional), nil
}

// RemoveAvailability удаляет окно доступности на день недели
func (s *Service) RemoveAvailability(ctx context.Context, id uuid.UUID, weekday int) error {
	s.logger.Info("RemoveAvailability: professional=%s, weekday=%d", id, weekday)

	if weekday < 0 || weekday > 6 {
		return fmt.Errorf("%w: weekday must be between 0 (Sunday) and 6 (Saturday)", ErrInvalidInput)
	}

	// Профессионал должен существовать, чтобы отличить 404 по окну от 404 по профессионалу
	if _, err := s.getProfessional(ctx, id, "RemoveAvailability"); err != nil {
		return err
	}

	if err := s.professionalRepo.DeleteAvailability(ctx, id, time.Weekday(weekday)); err != nil {
		if errors.Is(err, professionalRepo.ErrWindowNotFound) {
			s.logger.Warn("RemoveAvailability: no window for professional=%s, weekday=%d", id, weekday)
			return ErrWindowNotFound
		}
		s.logger.Error("RemoveAvailability: repository error for professional=%s: %v", id, err)
		return fmt.Errorf("%w: RemoveAvailability - repository error: %v", ErrInternal, err)
	}

	return nil
}

// SetActive включает или выключает профессионала в выдаче поиска
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	s.logger.Info("SetActive: professional=%s, active=%t", id, active)

	if err := s.professionalRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			return ErrProfessionalNotFound
		}
		s.logger.Error("SetActive: repository error for professional=%s: %v", id, err)
		return fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) getProfessional(ctx context.Context, id uuid.UUID, op string) (*domain.Professional, error) {
	professional, err := s.professionalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
			s.logger.Warn("%s: professional id=%s not found", op, id)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("%s: repository error for professional id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return professional, nil
}
