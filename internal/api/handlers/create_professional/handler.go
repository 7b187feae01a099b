package create_professional

import (
	"errors"
	"net/http"

	"github.com/t1mga/FSP-BookingService/internal/api/handlers"
	"github.com/t1mga/FSP-BookingService/internal/service/professionals"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные профессионала"
	msgDuplicateEmail     = "email уже зарегистрирован"
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

// Handle POST /api/v1/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /professionals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, professionals.ErrInvalidInput):
			h.logger.Warn("POST /professionals - Invalid professional data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, professionals.ErrDuplicateEmail):
			h.logger.Warn("POST /professionals - Duplicate email: email=%s", req.Email)
			handlers.RespondConflict(w, msgDuplicateEmail)

		default:
			h.logger.Error("POST /professionals - Failed to create professional: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /professionals - Professional created: professional_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
