package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PartyBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-PartyBookingService/internal/api/middleware"
	checkAvailability "github.com/m04kA/SMC-PartyBookingService/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateTime    = "invalid eventDate or startTime, expected YYYY-MM-DD and HH:MM"
	msgMissingUserID      = "missing user id"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	guardianID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings/availability - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(guardianID)
	if err != nil {
		h.logger.Warn("POST /bookings/availability - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /bookings/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings/availability - Failed to check availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/availability - location=%s, date=%s, start=%s, available=%t",
		req.Location, req.EventDate, req.StartTime, result.Available)
	handlers.RespondJSON(w, http.StatusOK, CheckAvailabilityResponse{Available: result.Available})
}
