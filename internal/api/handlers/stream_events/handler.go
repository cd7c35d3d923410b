package stream_events

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-PartyBookingService/internal/api/handlers"
)

const (
	subscriberBuffer  = 32
	heartbeatInterval = 25 * time.Second

	msgStreamingUnsupported = "streaming is not supported"
)

type Handler struct {
	source    EventSource
	logger    Logger
	heartbeat time.Duration
}

func NewHandler(source EventSource, logger Logger) *Handler {
	return &Handler{
		source:    source,
		logger:    logger,
		heartbeat: heartbeatInterval,
	}
}

// Handle GET /api/v1/admin/events/stream
// Server-Sent Events: каждое событие шины отправляется как "event: <type>", id = ID события
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /admin/events/stream - ResponseWriter does not support flushing")
		handlers.RespondError(w, http.StatusInternalServerError, msgStreamingUnsupported)
		return
	}

	// Поток живёт дольше WriteTimeout сервера
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	events, unsubscribe := h.source.Subscribe(subscriberBuffer)
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.logger.Info("GET /admin/events/stream - Client connected: %s", r.RemoteAddr)

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /admin/events/stream - Client disconnected: %s", r.RemoteAddr)
			return

		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()

		case event, open := <-events:
			if !open {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				h.logger.Warn("GET /admin/events/stream - Failed to encode event id=%d: %v", event.ID, err)
				continue
			}
			if _, err := fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", event.ID, event.Type, data); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
