package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PartyBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/addons"
	createBooking "github.com/m04kA/SMC-PartyBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-PartyBookingService/pkg/logger"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

type fakeUseCase struct {
	lastRequest *createBooking.Request
	lastGuest   *createBooking.GuestRequest
	err         error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return response(), nil
}

func (f *fakeUseCase) ExecuteGuest(_ context.Context, req *createBooking.GuestRequest) (*createBooking.Response, error) {
	f.lastGuest = req
	if f.err != nil {
		return nil, f.err
	}
	return response(), nil
}

func response() *createBooking.Response {
	return &createBooking.Response{
		BookingID:        11,
		Reference:        "BK-202611141000-ABCDEF12",
		Status:           domain.StatusPending,
		PaymentStatus:    domain.PaymentAwaitingDeposit,
		StartTime:        "10:00",
		EndTime:          "12:00",
		Subtotal:         money.Cents(34500),
		CleaningFee:      money.Cents(5000),
		Total:            money.Cents(39500),
		DepositAmount:    money.Cents(19750),
		BalanceRemaining: money.Cents(19750),
	}
}

const guardianBody = `{
	"childIds": [5],
	"packageId": 1,
	"location": "Albany",
	"eventDate": "2026-11-14",
	"startTime": "10:00",
	"guests": 12,
	"addOns": [{"code": "pizza", "quantity": 2}]
}`

func authorized(req *http.Request, guardianID int64) *http.Request {
	return req.WithContext(middleware.WithUser(req.Context(), guardianID, nil))
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	req := authorized(httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(guardianBody)), 3)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.lastRequest)
	assert.Equal(t, int64(3), uc.lastRequest.GuardianID)
	assert.Equal(t, []int64{5}, uc.lastRequest.ChildIDs)
	assert.Equal(t, "10:00", uc.lastRequest.StartTime.String())
	assert.Equal(t, []domain.AddOnSelection{{Code: "pizza", Quantity: 2}}, uc.lastRequest.AddOns)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 11.0, body["bookingId"])
	assert.NotContains(t, body, "id")
	assert.Equal(t, 395.0, body["total"])
	assert.Equal(t, 197.5, body["depositAmount"])
}

func TestHandle_Unauthorized(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(guardianBody)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_BadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{`},
		{"no children", strings.Replace(guardianBody, `[5]`, `[]`, 1)},
		{"bad date", strings.Replace(guardianBody, `2026-11-14`, `14.11.2026`, 1)},
		{"bad time", strings.Replace(guardianBody, `"10:00"`, `"10am"`, 1)},
		{"zero guests", strings.Replace(guardianBody, `12`, `0`, 1)},
		{"unknown field", strings.Replace(guardianBody, `"guests"`, `"kids": 1, "guests"`, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			h := NewHandler(uc, logger.NewNop())

			req := authorized(httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(tt.body)), 3)
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, uc.lastRequest)
		})
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"slot unavailable", createBooking.ErrSlotUnavailable, http.StatusConflict},
		{"invalid children", fmt.Errorf("%w: child id=9", createBooking.ErrInvalidChildren), http.StatusBadRequest},
		{"unknown add-on", fmt.Errorf("%w: %q", addons.ErrUnknownAddOn, "laser"), http.StatusBadRequest},
		{"customer not found", createBooking.ErrCustomerNotFound, http.StatusNotFound},
		{"categorized fallback", fmt.Errorf("%w: guests must be within 1..60", createBooking.ErrInvalidInput), http.StatusBadRequest},
		{"internal", fmt.Errorf("%w: db down", createBooking.ErrInternal), http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())

			req := authorized(httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(guardianBody)), 3)
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandleGuest(t *testing.T) {
	body := `{
		"guest": {"firstName": "Ann", "lastName": "Lee", "email": "ann@example.com", "phone": "555-0100", "childName": "Mia"},
		"packageId": 1,
		"location": "Albany",
		"eventDate": "2026-11-14",
		"startTime": "12:30",
		"guests": 10
	}`

	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.HandleGuest(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings/guest", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.lastGuest)
	assert.Equal(t, "ann@example.com", uc.lastGuest.Contact.Email)
	assert.Equal(t, "Mia", uc.lastGuest.Contact.ChildName)
	assert.Equal(t, 10, uc.lastGuest.Guests)

	t.Run("invalid email", func(t *testing.T) {
		uc := &fakeUseCase{}
		h := NewHandler(uc, logger.NewNop())

		rec := httptest.NewRecorder()
		bad := strings.Replace(body, "ann@example.com", "not-an-email", 1)
		h.HandleGuest(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings/guest", strings.NewReader(bad)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, uc.lastGuest)
	})
}
