package deposit_intent

import (
	"context"

	depositPayment "github.com/m04kA/SMC-PartyBookingService/internal/usecase/deposit_payment"
)

type DepositUseCase interface {
	CreateIntent(ctx context.Context, req *depositPayment.CreateIntentRequest) (*depositPayment.CreateIntentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
