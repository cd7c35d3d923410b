package deposit_intent

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PartyBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-PartyBookingService/internal/integrations/payments"
	depositPayment "github.com/m04kA/SMC-PartyBookingService/internal/usecase/deposit_payment"
	"github.com/m04kA/SMC-PartyBookingService/pkg/logger"
)

type fakeUseCase struct {
	req *depositPayment.CreateIntentRequest
	err error
}

func (f *fakeUseCase) CreateIntent(_ context.Context, req *depositPayment.CreateIntentRequest) (*depositPayment.CreateIntentResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &depositPayment.CreateIntentResponse{
		BookingID:    req.BookingID,
		IntentHandle: "mock_pi_1",
		Amount:       15000,
		Currency:     "USD",
		Provider:     "mock",
	}, nil
}

func request(id string, guardianID int64) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/"+id+"/deposit-intent", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": id})
	if guardianID > 0 {
		req = req.WithContext(middleware.WithUser(req.Context(), guardianID, nil))
	}
	return req
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, request("9", 3))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.req)
	assert.Equal(t, int64(9), uc.req.BookingID)
	assert.Equal(t, int64(3), uc.req.GuardianID)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "mock_pi_1", body["intentHandle"])
	assert.Equal(t, "mock", body["provider"])
	assert.Equal(t, "USD", body["currency"])
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		guardianID int64
		err        error
		status     int
	}{
		{"bad id", "0", 3, nil, http.StatusBadRequest},
		{"no user", "9", 0, nil, http.StatusUnauthorized},
		{"not configured", "9", 3, depositPayment.ErrPaymentsNotConfigured, http.StatusServiceUnavailable},
		{"not found", "9", 3, depositPayment.ErrBookingNotFound, http.StatusNotFound},
		{"guardian not found", "9", 3, depositPayment.ErrGuardianNotFound, http.StatusNotFound},
		{"already paid", "9", 3, depositPayment.ErrDepositAlreadyPaid, http.StatusConflict},
		{"cancelled", "9", 3, depositPayment.ErrBookingCancelled, http.StatusConflict},
		{"invalid deposit", "9", 3, depositPayment.ErrInvalidDeposit, http.StatusBadRequest},
		{"provider failure", "9", 3, fmt.Errorf("%w: timeout", payments.ErrProviderFailure), http.StatusPaymentRequired},
		{"internal", "9", 3, depositPayment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, request(tt.id, tt.guardianID))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
