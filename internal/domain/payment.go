package domain

import (
	"time"

	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

// DepositPaymentStatus is the state of a recorded deposit payment
type DepositPaymentStatus string

const (
	DepositPaymentPending  DepositPaymentStatus = "Pending"
	DepositPaymentCaptured DepositPaymentStatus = "Captured"
)

// DepositPayment records a provider intent created for a booking deposit
type DepositPayment struct {
	ID         int64
	BookingID  int64
	Provider   string
	IntentID   string
	Amount     money.Cents
	Status     DepositPaymentStatus
	CreatedAt  time.Time
	CapturedAt *time.Time
}
