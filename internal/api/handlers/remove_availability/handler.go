package remove_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/t1mga/FSP-BookingService/internal/api/handlers"
	"github.com/t1mga/FSP-BookingService/internal/service/professionals"
)

const (
	msgInvalidProfessionalID = "некорректный ID профессионала"
	msgInvalidWeekday        = "некорректный день недели: ожидается число от 0 до 6"
	msgProfessionalNotFound  = "профессионал не найден"
	msgWindowNotFound        = "окно доступности на этот день не найдено"
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

// Handle DELETE /api/v1/professionals/{professionalId}/availability/{weekday}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := uuid.Parse(vars["professionalId"])
	if err != nil {
		h.logger.Warn("DELETE /professionals/{id}/availability/{weekday} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	weekday, err := strconv.Atoi(vars["weekday"])
	if err != nil {
		h.logger.Warn("DELETE /professionals/{id}/availability/{weekday} - Invalid weekday: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeekday)
		return
	}

	if err := h.service.RemoveAvailability(r.Context(), professionalID, weekday); err != nil {
		switch {
		case errors.Is(err, professionals.ErrProfessionalNotFound):
			h.logger.Warn("DELETE /professionals/{id}/availability/{weekday} - Professional not found: professional_id=%s", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, professionals.ErrWindowNotFound):
			h.logger.Warn("DELETE /professionals/{id}/availability/{weekday} - Window not found: professional_id=%s, weekday=%d", professionalID, weekday)
			handlers.RespondNotFound(w, msgWindowNotFound)

		case errors.Is(err, professionals.ErrInvalidInput):
			h.logger.Warn("DELETE /professionals/{id}/availability/{weekday} - Invalid weekday: professional_id=%s, weekday=%d", professionalID, weekday)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		default:
			h.logger.Error("DELETE /professionals/{id}/availability/{weekday} - Failed to remove window: professional_id=%s, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /professionals/{id}/availability/{weekday} - Window removed: professional_id=%s, weekday=%d", professionalID, weekday)
	w.WriteHeader(http.StatusNoContent)
}
