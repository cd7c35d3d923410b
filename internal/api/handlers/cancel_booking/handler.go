package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PartyBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-PartyBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgMissingUserID    = "missing user id"
	msgNotFound         = "booking not found"
	msgGuardianNotFound = "guardian not found"
	msgAlreadyCancelled = "booking is already cancelled"
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

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	guardianID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Сервис проверяет, что бронирование принадлежит клиенту опекуна
	result, err := h.service.Cancel(r.Context(), bookingID, guardianID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%d, guardian_id=%d",
				bookingID, guardianID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrGuardianNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Guardian not found: guardian_id=%d", guardianID)
			handlers.RespondNotFound(w, msgGuardianNotFound)

		case errors.Is(err, bookings.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Already cancelled: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled successfully: booking_id=%d, guardian_id=%d",
		bookingID, guardianID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
