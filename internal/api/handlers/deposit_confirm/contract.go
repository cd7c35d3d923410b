package deposit_confirm

import (
	"context"

	depositPayment "github.com/m04kA/SMC-PartyBookingService/internal/usecase/deposit_payment"
)

type DepositUseCase interface {
	ConfirmIntent(ctx context.Context, req *depositPayment.ConfirmRequest) (*depositPayment.ConfirmResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
