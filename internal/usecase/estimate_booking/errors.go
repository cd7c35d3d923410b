package estimate_booking

import "github.com/m04kA/SMC-PartyBookingService/internal/domain"

// ErrInvalidInput возвращается при некорректных входных данных
var ErrInvalidInput = domain.NewError(domain.ErrValidation, "estimate_booking: invalid input data")
