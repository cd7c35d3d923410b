package estimate_booking

import (
	"context"

	estimateBooking "github.com/m04kA/SMC-PartyBookingService/internal/usecase/estimate_booking"
)

type EstimateBookingUseCase interface {
	Execute(ctx context.Context, req *estimateBooking.Request) (*estimateBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
