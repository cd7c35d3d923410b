package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PartyBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-PartyBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/addons"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/pricing"
	createBooking "github.com/m04kA/SMC-PartyBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateTime    = "invalid eventDate or startTime, expected YYYY-MM-DD and HH:MM"
	msgMissingUserID      = "missing user id"
	msgSlotUnavailable    = "selected time slot is not available"
	msgInvalidChildren    = "children do not belong to this guardian"
	msgPackageNotFound    = "party package not found"
	msgUnknownAddOn       = "unknown add-on"
	msgCustomerNotFound   = "customer record not found for this guardian"
	msgUnsupportedLoc     = "location is not supported"
	msgDateInPast         = "event date is in the past"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guardianID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(guardianID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, "POST /bookings", err)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, reference=%s, guardian_id=%d",
		result.BookingID, result.Reference, guardianID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// HandleGuest POST /api/v1/bookings/guest
func (h *Handler) HandleGuest(w http.ResponseWriter, r *http.Request) {
	var req CreateGuestBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/guest - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings/guest - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/guest - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.ExecuteGuest(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, "POST /bookings/guest", err)
		return
	}

	h.logger.Info("POST /bookings/guest - Guest booking created successfully: booking_id=%d, reference=%s",
		result.BookingID, result.Reference)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, createBooking.ErrSlotUnavailable):
		h.logger.Warn("%s - Slot not available: %v", route, err)
		handlers.RespondConflict(w, msgSlotUnavailable)

	case errors.Is(err, createBooking.ErrInvalidChildren):
		h.logger.Warn("%s - Invalid children: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidChildren)

	case errors.Is(err, createBooking.ErrUnsupportedLocation):
		h.logger.Warn("%s - Unsupported location: %v", route, err)
		handlers.RespondBadRequest(w, msgUnsupportedLoc)

	case errors.Is(err, createBooking.ErrInvalidDate):
		h.logger.Warn("%s - Event date in the past: %v", route, err)
		handlers.RespondBadRequest(w, msgDateInPast)

	case errors.Is(err, createBooking.ErrCustomerNotFound):
		h.logger.Warn("%s - Customer not found: %v", route, err)
		handlers.RespondNotFound(w, msgCustomerNotFound)

	case errors.Is(err, pricing.ErrPackageNotFound):
		h.logger.Warn("%s - Package not found: %v", route, err)
		handlers.RespondNotFound(w, msgPackageNotFound)

	case errors.Is(err, addons.ErrUnknownAddOn):
		h.logger.Warn("%s - Unknown add-on: %v", route, err)
		handlers.RespondBadRequest(w, msgUnknownAddOn)

	default:
		if _, ok := handlers.StatusFor(err); ok {
			h.logger.Warn("%s - Rejected: %v", route, err)
		} else {
			h.logger.Error("%s - Failed to create booking: %v", route, err)
		}
		handlers.RespondDomainError(w, err)
	}
}
