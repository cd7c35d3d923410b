package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PartyBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-PartyBookingService/pkg/logger"
)

type fakeService struct {
	bookingID, guardianID int64
	err                   error
}

func (f *fakeService) Cancel(_ context.Context, bookingID, guardianID int64) (*models.StatusResponse, error) {
	f.bookingID, f.guardianID = bookingID, guardianID
	if f.err != nil {
		return nil, f.err
	}
	return &models.StatusResponse{BookingID: bookingID, Status: "Cancelled"}, nil
}

func request(id string, guardianID int64) *http.Request {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+id+"/cancel", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	if guardianID > 0 {
		req = req.WithContext(middleware.WithUser(req.Context(), guardianID, nil))
	}
	return req
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, request("15", 4))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(15), svc.bookingID)
	assert.Equal(t, int64(4), svc.guardianID)
	assert.JSONEq(t, `{"bookingId":15,"status":"Cancelled"}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		guardianID int64
		err        error
		status     int
	}{
		{"bad id", "abc", 4, nil, http.StatusBadRequest},
		{"no user", "15", 0, nil, http.StatusUnauthorized},
		{"not found", "15", 4, bookings.ErrBookingNotFound, http.StatusNotFound},
		{"already cancelled", "15", 4, bookings.ErrAlreadyCancelled, http.StatusConflict},
		{"internal", "15", 4, bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, request(tt.id, tt.guardianID))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
