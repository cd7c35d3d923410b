package deposit_confirm

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PartyBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-PartyBookingService/internal/api/middleware"
	depositPayment "github.com/m04kA/SMC-PartyBookingService/internal/usecase/deposit_payment"
)

const (
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidRequestBody = "invalid request body"
	msgMissingIntent      = "intentHandle is required"
	msgMissingUserID      = "missing user id"
	msgNotFound           = "booking not found"
	msgNotConfigured      = "payments are not configured"
	msgIntentMismatch     = "payment does not belong to this booking"
	msgNotSettled         = "payment is not complete"
	msgAmountMismatch     = "paid amount does not match the deposit"
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

// Handle POST /api/v1/bookings/{bookingId}/deposit/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/deposit/confirm - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	guardianID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/deposit/confirm - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ConfirmDepositRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/deposit/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings/{id}/deposit/confirm - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgMissingIntent)
		return
	}

	result, err := h.useCase.ConfirmIntent(r.Context(), req.ToUseCaseRequest(guardianID, bookingID))
	if err != nil {
		switch {
		case errors.Is(err, depositPayment.ErrPaymentsNotConfigured):
			h.logger.Warn("POST /bookings/{id}/deposit/confirm - Payments not configured")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgNotConfigured)

		case errors.Is(err, depositPayment.ErrBookingNotFound), errors.Is(err, depositPayment.ErrGuardianNotFound):
			h.logger.Warn("POST /bookings/{id}/deposit/confirm - Booking not found: booking_id=%d, guardian_id=%d",
				bookingID, guardianID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, depositPayment.ErrIntentMismatch):
			h.logger.Warn("POST /bookings/{id}/deposit/confirm - Intent mismatch: booking_id=%d, intent=%s",
				bookingID, req.IntentHandle)
			handlers.RespondBadRequest(w, msgIntentMismatch)

		case errors.Is(err, depositPayment.ErrPaymentNotSettled):
			h.logger.Warn("POST /bookings/{id}/deposit/confirm - Not settled: intent=%s", req.IntentHandle)
			handlers.RespondError(w, http.StatusPaymentRequired, msgNotSettled)

		case errors.Is(err, depositPayment.ErrPaymentAmountMismatch):
			h.logger.Warn("POST /bookings/{id}/deposit/confirm - Amount mismatch: %v", err)
			handlers.RespondError(w, http.StatusPaymentRequired, msgAmountMismatch)

		default:
			if _, ok := handlers.StatusFor(err); ok {
				h.logger.Warn("POST /bookings/{id}/deposit/confirm - Rejected: booking_id=%d, error=%v", bookingID, err)
			} else {
				h.logger.Error("POST /bookings/{id}/deposit/confirm - Failed to confirm: booking_id=%d, error=%v",
					bookingID, err)
			}
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/deposit/confirm - Deposit confirmed: booking_id=%d, balance=%s",
		bookingID, result.BalanceRemaining)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
