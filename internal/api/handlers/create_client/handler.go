package create_client

import (
	"errors"
	"net/http"

	"github.com/t1mga/FSP-BookingService/internal/api/handlers"
	"github.com/t1mga/FSP-BookingService/internal/service/clients"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные клиента"
	msgDuplicateEmail     = "email уже зарегистрирован"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("POST /clients - Invalid client data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, clients.ErrDuplicateEmail):
			h.logger.Warn("POST /clients - Duplicate email: email=%s", req.Email)
			handlers.RespondConflict(w, msgDuplicateEmail)

		default:
			h.logger.Error("POST /clients - Failed to create client: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients - Client created: client_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
