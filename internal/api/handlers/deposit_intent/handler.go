package deposit_intent

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PartyBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-PartyBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-PartyBookingService/internal/integrations/payments"
	depositPayment "github.com/m04kA/SMC-PartyBookingService/internal/usecase/deposit_payment"
)

const (
	msgInvalidBookingID  = "invalid booking id"
	msgMissingUserID     = "missing user id"
	msgNotFound          = "booking not found"
	msgDepositPaid       = "deposit already paid"
	msgBookingCancelled  = "booking is cancelled"
	msgNotConfigured     = "payments are not configured"
	msgProviderRejected  = "payment provider rejected the request"
	msgInvalidDepositAmt = "deposit amount is invalid"
)

type Handler struct {
	useCase DepositUseCase
	logger  Logger
}

func NewHandler(useCase DepositUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/deposit-intent
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/deposit-intent - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	guardianID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/deposit-intent - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.CreateIntent(r.Context(), &depositPayment.CreateIntentRequest{
		GuardianID: guardianID,
		BookingID:  bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, depositPayment.ErrPaymentsNotConfigured):
			h.logger.Warn("POST /bookings/{id}/deposit-intent - Payments not configured")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgNotConfigured)

		case errors.Is(err, depositPayment.ErrBookingNotFound), errors.Is(err, depositPayment.ErrGuardianNotFound):
			h.logger.Warn("POST /bookings/{id}/deposit-intent - Booking not found: booking_id=%d, guardian_id=%d",
				bookingID, guardianID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, depositPayment.ErrDepositAlreadyPaid):
			h.logger.Warn("POST /bookings/{id}/deposit-intent - Deposit already paid: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgDepositPaid)

		case errors.Is(err, depositPayment.ErrBookingCancelled):
			h.logger.Warn("POST /bookings/{id}/deposit-intent - Booking cancelled: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgBookingCancelled)

		case errors.Is(err, depositPayment.ErrInvalidDeposit):
			h.logger.Warn("POST /bookings/{id}/deposit-intent - Invalid deposit: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgInvalidDepositAmt)

		case errors.Is(err, payments.ErrProviderFailure):
			h.logger.Error("POST /bookings/{id}/deposit-intent - Provider failure: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusPaymentRequired, msgProviderRejected)

		default:
			h.logger.Error("POST /bookings/{id}/deposit-intent - Failed to create intent: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/deposit-intent - Intent created: booking_id=%d, provider=%s, amount=%s",
		bookingID, result.Provider, result.Amount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
