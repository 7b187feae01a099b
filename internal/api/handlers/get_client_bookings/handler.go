package get_client_bookings

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/t1mga/FSP-BookingService/internal/api/handlers"
	"github.com/t1mga/FSP-BookingService/internal/service/bookings"
)

const (
	msgInvalidClientID = "некорректный ID клиента"
	msgInvalidStatus   = "некорректный статус: ожидается pending, confirmed или cancelled"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/bookings?status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clientID, err := uuid.Parse(vars["clientId"])
	if err != nil {
		h.logger.Warn("GET /clients/{id}/bookings - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	// Опциональный фильтр по статусу
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.GetClientBookings(r.Context(), clientID, status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /clients/{id}/bookings - Invalid status filter: client_id=%s", clientID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /clients/{id}/bookings - Failed to get bookings: client_id=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{id}/bookings - Retrieved %d bookings: client_id=%s", len(result.Bookings), clientID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
