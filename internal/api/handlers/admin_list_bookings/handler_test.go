package admin_list_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PartyBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-PartyBookingService/pkg/logger"
)

type fakeService struct {
	last *models.ListBookingsRequest
	err  error
}

func (f *fakeService) ListAll(_ context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingListResponse{Bookings: []models.BookingResponse{}, Total: 0}, nil
}

func TestHandle_Filters(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?location=Albany&date=2026-11-14&status=Pending", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.last.Location)
	assert.Equal(t, "Albany", *svc.last.Location)
	require.NotNil(t, svc.last.Date)
	assert.Equal(t, time.Date(2026, 11, 14, 0, 0, 0, 0, time.UTC), *svc.last.Date)
	require.NotNil(t, svc.last.Status)
	assert.Equal(t, "Pending", *svc.last.Status)
}

func TestHandle_NoFilters(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.last.Location)
	assert.Nil(t, svc.last.Date)
	assert.Nil(t, svc.last.Status)
}

func TestHandle_Errors(t *testing.T) {
	h := NewHandler(&fakeService{}, logger.NewNop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?date=tomorrow", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h = NewHandler(&fakeService{err: bookings.ErrInvalidStatus}, logger.NewNop())
	rec = httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?status=Done", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
