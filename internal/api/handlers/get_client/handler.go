package get_client

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/t1mga/FSP-BookingService/internal/api/handlers"
	"github.com/t1mga/FSP-BookingService/internal/service/clients"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
	msgNotFound        = "клиент не найден"
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

// Handle GET /api/v1/clients/{clientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientID, err := uuid.Parse(vars["clientId"])
	if err != nil {
		h.logger.Warn("GET /clients/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	client, err := h.service.GetByID(r.Context(), clientID)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("GET /clients/{id} - Client not found: client_id=%s", clientID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /clients/{id} - Failed to get client: client_id=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{id} - Client retrieved: client_id=%s", clientID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(client))
}
