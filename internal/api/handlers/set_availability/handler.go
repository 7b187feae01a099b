package set_availability

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/t1mga/FSP-BookingService/internal/api/handlers"
	"github.com/t1mga/FSP-BookingService/internal/service/professionals"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidWindow         = "некорректное окно доступности"
	msgNotFound              = "профессионал не найден"
)

type Handler struct {
	service ProfessionalService
	logger  Logger
}

func NewHandler(service ProfessionalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/professionals/{professionalId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := uuid.Parse(vars["professionalId"])
	if err != nil {
		h.logger.Warn("PUT /professionals/{id}/availability - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	var req SetAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /professionals/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetAvailability(r.Context(), professionalID, req.Weekday, req.StartTime, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, professionals.ErrProfessionalNotFound):
			h.logger.Warn("PUT /professionals/{id}/availability - Professional not found: professional_id=%s", professionalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, professionals.ErrInvalidInput):
			h.logger.Warn("PUT /professionals/{id}/availability - Invalid window: professional_id=%s, error=%v", professionalID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("PUT /professionals/{id}/availability - Failed to set availability: professional_id=%s, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /professionals/{id}/availability - Availability set: professional_id=%s, weekday=%d", professionalID, req.Weekday)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
