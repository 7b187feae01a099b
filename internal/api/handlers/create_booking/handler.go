package create_booking

import (
	"errors"
	"net/http"

	"github.com/t1mga/FSP-BookingService/internal/api/handlers"
	createBooking "github.com/t1mga/FSP-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidRequestFields = "некорректные поля запроса: ожидаются UUID, дата YYYY-MM-DD и время HH:MM"
	msgClientNotFound       = "клиент не найден"
	msgProfessionalNotFound = "профессионал не найден"
	msgProfessionalInactive = "профессионал недоступен для бронирования"
	msgTooLateToBook        = "бронирование должно начинаться минимум через 30 минут"
	msgNotAvailable         = "профессионал недоступен в выбранное время"
	msgTimeConflict         = "выбранное время пересекается с существующим бронированием"
	msgInvalidBookingData   = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом UUID, даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrClientNotFound):
			h.logger.Warn("POST /bookings - Client not found: client_id=%s", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrProfessionalNotFound):
			h.logger.Warn("POST /bookings - Professional not found: professional_id=%s", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createBooking.ErrProfessionalInactive):
			h.logger.Warn("POST /bookings - Professional inactive: professional_id=%s", req.ProfessionalID)
			handlers.RespondUnprocessable(w, msgProfessionalInactive)

		case errors.Is(err, createBooking.ErrTooLateToBook):
			h.logger.Warn("POST /bookings - Too late to book: client_id=%s, date=%s %s", req.ClientID, req.Date, req.StartTime)
			handlers.RespondUnprocessable(w, msgTooLateToBook)

		case errors.Is(err, createBooking.ErrNotAvailable):
			h.logger.Warn("POST /bookings - Professional not available: professional_id=%s, date=%s %s-%s",
				req.ProfessionalID, req.Date, req.StartTime, req.EndTime)
			handlers.RespondUnprocessable(w, msgNotAvailable)

		case errors.Is(err, createBooking.ErrTimeConflict):
			h.logger.Warn("POST /bookings - Time conflict: professional_id=%s, date=%s %s-%s",
				req.ProfessionalID, req.Date, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgTimeConflict)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid booking data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingData)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%s, professional_id=%s, error=%v",
				req.ClientID, req.ProfessionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, client_id=%s, professional_id=%s",
		result.ID, req.ClientID, req.ProfessionalID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
