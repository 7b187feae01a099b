package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/t1mga/FSP-BookingService/internal/domain"
	bookingRepo "github.com/t1mga/FSP-BookingService/internal/infra/storage/booking"
	clientRepo "github.com/t1mga/FSP-BookingService/internal/infra/storage/client"
	professionalRepo "github.com/t1mga/FSP-BookingService/internal/infra/storage/professional"
)

// UseCase use case создания бронирования
// Вся последовательность выполняется в одной SERIALIZABLE транзакции:
// двойная проверка конфликта (in-memory по загруженному агрегату + авторитетный
// запрос к хранилищу) плюс exclusion constraint в схеме гарантируют, что из двух
// конкурирующих бронирований одного профессионала на пересекающееся время
// зафиксируется только одно
type UseCase struct {
	bookingRepo      BookingRepository
	professionalRepo ProfessionalRepository
	clientRepo       ClientRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	professionalRepo ProfessionalRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		professionalRepo: professionalRepo,
		clientRepo:       clientRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// При любой ошибке транзакция откатывается, частичное состояние не наблюдаемо
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%s, professional=%s, date=%s, time=%s-%s",
		req.ClientID, req.ProfessionalID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация формы запроса
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Клиент должен существовать
		if _, err := uc.clientRepo.GetByID(txCtx, req.ClientID); err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				uc.logger.Warn("CreateBooking: client id=%s not found", req.ClientID)
				return ErrClientNotFound
			}
			uc.logger.Error("CreateBooking: failed to get client id=%s: %v", req.ClientID, err)
			return fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}

		// 3. Профессионал загружается вместе с окнами доступности
		// и неотменёнными бронированиями (строки блокируются FOR UPDATE)
		professional, err := uc.professionalRepo.GetByIDWithBookings(txCtx, req.ProfessionalID)
		if err != nil {
			if errors.Is(err, professionalRepo.ErrProfessionalNotFound) {
				uc.logger.Warn("CreateBooking: professional id=%s not found", req.ProfessionalID)
				return ErrProfessionalNotFound
			}
			uc.logger.Error("CreateBooking: failed to get professional id=%s: %v", req.ProfessionalID, err)
			return fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
		}

		// 4. Деактивированный профессионал бронирования не принимает
		if !professional.Active {
			uc.logger.Warn("CreateBooking: professional id=%s is inactive", req.ProfessionalID)
			return ErrProfessionalInactive
		}

		// 5. Правило заблаговременности: начало минимум через 30 минут
		startAt := domain.DateOnly(req.Date).Add(time.Duration(req.StartTime.Minutes()) * time.Minute)
		if !startAt.After(now.Add(domain.MinLeadTimeMinutes * time.Minute)) {
			uc.logger.Warn("CreateBooking: start %s violates lead time", startAt.Format(time.RFC3339))
			return ErrTooLateToBook
		}

		// 6. Конструктор сущности проверяет все инварианты бронирования
		booking, err := domain.NewBooking(
			req.ClientID,
			req.ProfessionalID,
			req.Date,
			req.StartTime,
			req.EndTime,
			req.OriginAddress,
			req.OriginLatitude,
			req.OriginLongitude,
			now,
		)
		if err != nil {
			uc.logger.Warn("CreateBooking: booking invariants violated: %v", err)
			return fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}

		// 7. Проверка доступности по загруженному агрегату
		// (окно доступности + конфликты с загруженными бронированиями)
		if !professional.IsAvailableAt(startAt, booking.DurationMinutes()) {
			uc.logger.Warn("CreateBooking: professional id=%s not available at %s",
				req.ProfessionalID, startAt.Format(time.RFC3339))
			return ErrNotAvailable
		}

		// 8. Авторитетная перепроверка конфликта по хранилищу внутри той же
		// транзакции: снимок из шага 3 мог устареть между чтением и записью
		hasConflict, err := uc.bookingRepo.HasTimeConflict(
			txCtx, req.ProfessionalID, req.Date, req.StartTime, req.EndTime, nil,
		)
		if err != nil {
			uc.logger.Error("CreateBooking: conflict re-check failed: %v", err)
			return fmt.Errorf("%w: conflict re-check failed: %v", ErrInternal, err)
		}
		if hasConflict {
			uc.logger.Warn("CreateBooking: time conflict for professional id=%s on %s %s-%s",
				req.ProfessionalID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
			return ErrTimeConflict
		}

		// 9. Сохраняем бронирование (status = pending)
		// Exclusion constraint в схеме - последний рубеж против гонки
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrTimeConflict) {
				uc.logger.Warn("CreateBooking: exclusion constraint rejected booking for professional id=%s",
					req.ProfessionalID)
				return ErrTimeConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return fromDomainBooking(result), nil
}
