package deposit_confirm

import (
	depositPayment "github.com/m04kA/SMC-PartyBookingService/internal/usecase/deposit_payment"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

// ConfirmDepositRequest HTTP request model
type ConfirmDepositRequest struct {
	IntentHandle string `json:"intentHandle" validate:"required"`
}

// ConfirmDepositResponse HTTP response model
type ConfirmDepositResponse struct {
	BookingID        int64       `json:"bookingId"`
	Status           string      `json:"status"`
	PaymentStatus    string      `json:"paymentStatus"`
	BalanceRemaining money.Cents `json:"balanceRemaining"`
}

func (r *ConfirmDepositRequest) ToUseCaseRequest(guardianID, bookingID int64) *depositPayment.ConfirmRequest {
	return &depositPayment.ConfirmRequest{
		GuardianID:   guardianID,
		BookingID:    bookingID,
		IntentHandle: r.IntentHandle,
	}
}

func FromUseCaseResponse(resp *depositPayment.ConfirmResponse) *ConfirmDepositResponse {
	return &ConfirmDepositResponse{
		BookingID:        resp.BookingID,
		Status:           string(resp.Status),
		PaymentStatus:    string(resp.PaymentStatus),
		BalanceRemaining: resp.BalanceRemaining,
	}
}
