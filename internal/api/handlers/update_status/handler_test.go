package update_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PartyBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-PartyBookingService/pkg/logger"
)

type fakeService struct {
	calls int
	err   error
}

func (f *fakeService) UpdateStatus(_ context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.StatusResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &models.StatusResponse{BookingID: bookingID, Status: req.Status}, nil
}

func request(id, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+id+"/status", strings.NewReader(body))
	return mux.SetURLVars(req, map[string]string{"bookingId": id})
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, request("4", `{"status":"Confirmed"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"bookingId":4,"status":"Confirmed"}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		body      string
		err       error
		status    int
		wantCalls int
	}{
		{"bad id", "x", `{"status":"Confirmed"}`, nil, http.StatusBadRequest, 0},
		{"unknown status", "4", `{"status":"Done"}`, nil, http.StatusBadRequest, 0},
		{"lower case", "4", `{"status":"confirmed"}`, nil, http.StatusBadRequest, 0},
		{"not found", "4", `{"status":"Cancelled"}`, bookings.ErrBookingNotFound, http.StatusNotFound, 1},
		{"internal", "4", `{"status":"Pending"}`, bookings.ErrInternal, http.StatusInternalServerError, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			h := NewHandler(svc, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, request(tt.id, tt.body))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.wantCalls, svc.calls)
		})
	}
}
