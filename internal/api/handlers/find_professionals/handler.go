package find_professionals

import (
	"errors"
	"net/http"

	"github.com/t1mga/FSP-BookingService/internal/api/handlers"
	findProfessionals "github.com/t1mga/FSP-BookingService/internal/usecase/find_professionals"
)

const (
	msgInvalidQuery  = "некорректные параметры поиска: ожидаются latitude, longitude, startAt (RFC 3339) и durationMinutes"
	msgInvalidSearch = "некорректные данные поиска"
	msgTooSoon       = "время начала должно быть минимум через 30 минут"
)

type Handler struct {
	useCase FindProfessionalsUseCase
	logger  Logger
}

func NewHandler(useCase FindProfessionalsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/nearby?latitude=..&longitude=..&startAt=..&durationMinutes=..
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ParseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /professionals/nearby - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, findProfessionals.ErrInvalidInput):
			h.logger.Warn("GET /professionals/nearby - Invalid search data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSearch)

		case errors.Is(err, findProfessionals.ErrTooSoon):
			h.logger.Warn("GET /professionals/nearby - Requested start too soon: start_at=%s", req.StartAt)
			handlers.RespondUnprocessable(w, msgTooSoon)

		default:
			h.logger.Error("GET /professionals/nearby - Search failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /professionals/nearby - Found %d professionals", len(result.Professionals))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
