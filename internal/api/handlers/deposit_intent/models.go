package deposit_intent

import (
	depositPayment "github.com/m04kA/SMC-PartyBookingService/internal/usecase/deposit_payment"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

// DepositIntentResponse HTTP response model
type DepositIntentResponse struct {
	BookingID    int64       `json:"bookingId"`
	IntentHandle string      `json:"intentHandle"`
	Amount       money.Cents `json:"amount"`
	Currency     string      `json:"currency"`
	Provider     string      `json:"provider"`
}

func FromUseCaseResponse(resp *depositPayment.CreateIntentResponse) *DepositIntentResponse {
	return &DepositIntentResponse{
		BookingID:    resp.BookingID,
		IntentHandle: resp.IntentHandle,
		Amount:       resp.Amount,
		Currency:     resp.Currency,
		Provider:     resp.Provider,
	}
}
