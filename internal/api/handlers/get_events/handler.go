package get_events

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-PartyBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

const (
	defaultLimit = 100
	maxLimit     = 100

	msgInvalidLimit = "limit must be a positive integer"
)

// EventsResponse HTTP response model
type EventsResponse struct {
	Events []domain.Event `json:"events"`
	Total  int            `json:"total"`
}

type Handler struct {
	source EventSource
	logger Logger
}

func NewHandler(source EventSource, logger Logger) *Handler {
	return &Handler{
		source: source,
		logger: logger,
	}
}

// Handle GET /api/v1/admin/events
// Query params: limit (опционально, не больше 100)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /admin/events - Invalid limit: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = min(parsed, maxLimit)
	}

	events := h.source.Recent(limit)

	h.logger.Info("GET /admin/events - Events retrieved: count=%d", len(events))
	handlers.RespondJSON(w, http.StatusOK, EventsResponse{Events: events, Total: len(events)})
}
