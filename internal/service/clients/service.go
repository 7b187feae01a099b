package clients

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/t1mga/FSP-BookingService/internal/domain"
	clientRepo "github.com/t1mga/FSP-BookingService/internal/infra/storage/client"
	"github.com/t1mga/FSP-BookingService/internal/service/clients/models"
)

// Service сервис для работы с клиентами
type Service struct {
	clientRepo ClientRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(clientRepo ClientRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Create регистрирует нового клиента
func (s *Service) Create(ctx context.Context, req *models.CreateClientRequest) (*models.ClientResponse, error) {
	s.logger.Info("Create: registering client email=%s", req.Email)

	client, err := domain.NewClient(req.Name, req.Email, req.Phone, req.Latitude, req.Longitude, time.Now())
	if err != nil {
		s.logger.Warn("Create: invalid client data: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	created, err := s.clientRepo.Create(ctx, client)
	if err != nil {
		if errors.Is(err, clientRepo.ErrDuplicateEmail) {
			s.logger.Warn("Create: email %s already registered", req.Email)
			return nil, ErrDuplicateEmail
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: client id=%s registered", created.ID)
	return models.FromDomainClient(created), nil
}

// GetByID получает клиента по идентификатору
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ClientResponse, error) {
	s.logger.Info("GetByID: fetching client id=%s", id)

	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("GetByID: client id=%s not found", id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("GetByID: repository error for client id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainClient(client), nil
}
