package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/t1mga/FSP-BookingService/internal/domain"
	bookingRepo "github.com/t1mga/FSP-BookingService/internal/infra/storage/booking"
	"github.com/t1mga/FSP-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
// Переходы статусов валидируются доменной моделью централизованно:
// pending -> confirmed, pending -> cancelled, confirmed -> cancelled
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.getBooking(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// Confirm подтверждает pending бронирование
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%s", id)

	booking, err := s.getBooking(ctx, id, "Confirm")
	if err != nil {
		return nil, err
	}

	if err := booking.Confirm(); err != nil {
		s.logger.Warn("Confirm: booking id=%s cannot be confirmed, status=%s", id, booking.Status)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStateTransition, err)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusConfirmed); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Confirm: failed to update status for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Confirm: booking id=%s confirmed", id)
	return models.FromDomainBooking(booking), nil
}

// Cancel отменяет бронирование
// Отменить можно pending или confirmed; повторная отмена - ошибка
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	booking, err := s.getBooking(ctx, id, "Cancel")
	if err != nil {
		return nil, err
	}

	if err := booking.Cancel(); err != nil {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", id, booking.Status)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStateTransition, err)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to update status for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%s cancelled", id)
	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientBookings(ctx context.Context, clientID uuid.UUID, status *string) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%s", clientID)

	var domainStatus *domain.BookingStatus
	if status != nil {
		parsed, ok := domain.ParseBookingStatus(*status)
		if !ok {
			s.logger.Warn("GetClientBookings: invalid status=%s for client=%s", *status, clientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &parsed
	}

	bookings, err := s.bookingRepo.GetByClientID(ctx, clientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: fetched %d bookings for client=%s", len(bookings), clientID)
	return models.FromDomainBookingList(bookings), nil
}

func (s *Service) getBooking(ctx context.Context, id uuid.UUID, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
