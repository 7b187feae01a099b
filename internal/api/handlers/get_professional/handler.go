package get_professional

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

// Handle GET /api/v1/professionals/{professionalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID, err := uuid.Parse(vars["professionalId"])
	if err != nil {
		h.logger.Warn("GET /professionals/{id} - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	professional, err := h.service.GetByID(r.Context(), professionalID)
	if err != nil {
		switch {
		case errors.Is(err, professionals.ErrProfessionalNotFound):
			h.logger.Warn("GET /professionals/{id} - Professional not found: professional_id=%s", professionalID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /professionals/{id} - Failed to get professional: professional_id=%s, error=%v", professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/{id} - Professional retrieved: professional_id=%s", professionalID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(professional))
}
