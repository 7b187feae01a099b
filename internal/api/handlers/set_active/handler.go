package set_active

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
	msgNotFound              = "профессионал не найден"
)

// SetActiveRequest HTTP request model
type SetActiveRequest struct {
	Active bool `json:"active"`
}

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

// Handle PATCH /api/v1/professionals/{professionalId}/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := uuid.Parse(vars["professionalId"])
	if err != nil {
		h.logger.Warn("PATCH /professionals/{id}/active - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	var req SetActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /professionals/{id}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetActive(r.Context(), professionalID, req.Active); err != nil {
		switch {
		case errors.Is(err, professionals.ErrProfessionalNotFound):
			h.logger.Warn("PATCH /professionals/{id}/active - Professional not found: professional_id=%s", professionalID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /professionals/{id}/active - Failed to update active flag: professional_id=%s, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /professionals/{id}/active - Active flag updated: professional_id=%s, active=%t", professionalID, req.Active)
	w.WriteHeader(http.StatusNoContent)
}
