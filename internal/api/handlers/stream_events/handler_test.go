package stream_events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/pkg/logger"
)

type fakeSource struct {
	ch           chan domain.Event
	unsubscribed bool
}

func (f *fakeSource) Subscribe(int) (<-chan domain.Event, func()) {
	return f.ch, func() { f.unsubscribed = true }
}

func TestHandle_WritesEvents(t *testing.T) {
	src := &fakeSource{ch: make(chan domain.Event, 1)}
	src.ch <- domain.Event{
		ID:        7,
		Type:      domain.EventBookingCreated,
		Payload:   map[string]interface{}{"bookingId": 11},
		CreatedAt: time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC),
	}
	close(src.ch)

	h := NewHandler(src, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/events/stream", nil))

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "id: 7\nevent: booking.created\ndata: {\"id\":7,\"type\":\"booking.created\"")
	assert.True(t, src.unsubscribed)
}

func TestHandle_StopsOnDisconnect(t *testing.T) {
	src := &fakeSource{ch: make(chan domain.Event)}
	h := NewHandler(src, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/events/stream", nil).WithContext(ctx)

	done := make(chan struct{})
	go func() {
		h.Handle(httptest.NewRecorder(), req)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "handler did not return after disconnect")
	}
	assert.True(t, src.unsubscribed)
}
