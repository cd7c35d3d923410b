package recalculate_pricing

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PartyBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/pricing"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgNotFound         = "booking not found"
	msgPackageNotFound  = "party package not found"
	msgDepositPaid      = "deposit already paid, pricing is locked"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/bookings/{bookingId}/recalculate-pricing
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /admin/bookings/{id}/recalculate-pricing - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.RecalculatePricing(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /admin/bookings/{id}/recalculate-pricing - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, pricing.ErrPackageNotFound):
			h.logger.Warn("POST /admin/bookings/{id}/recalculate-pricing - Package not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, bookings.ErrDepositAlreadyPaid):
			h.logger.Warn("POST /admin/bookings/{id}/recalculate-pricing - Deposit paid: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgDepositPaid)

		default:
			h.logger.Error("POST /admin/bookings/{id}/recalculate-pricing - Failed: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings/{id}/recalculate-pricing - Recalculated: booking_id=%d, total=%s",
		bookingID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
