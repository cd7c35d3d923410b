package estimate_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PartyBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/addons"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/pricing"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgPackageNotFound    = "party package not found"
	msgUnknownAddOn       = "unknown add-on"
)

type Handler struct {
	useCase EstimateBookingUseCase
	logger  Logger
}

func NewHandler(useCase EstimateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/estimate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/estimate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /bookings/estimate - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrPackageNotFound):
			h.logger.Warn("POST /bookings/estimate - Package not found: package_id=%d", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, addons.ErrUnknownAddOn):
			h.logger.Warn("POST /bookings/estimate - Unknown add-on: %v", err)
			handlers.RespondBadRequest(w, msgUnknownAddOn)

		default:
			if _, ok := handlers.StatusFor(err); ok {
				h.logger.Warn("POST /bookings/estimate - Rejected: %v", err)
			} else {
				h.logger.Error("POST /bookings/estimate - Failed to estimate: %v", err)
			}
			handlers.RespondDomainError(w, err)
		}
		return
	}

	h.logger.Info("POST /bookings/estimate - package_id=%d, guests=%d, total=%s",
		req.PackageID, req.Guests, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
