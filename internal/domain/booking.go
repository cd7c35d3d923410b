package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
	"github.com/m04kA/SMC-PartyBookingService/pkg/types"
)

// BookingStatus represents the lifecycle status of a party booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCancelled BookingStatus = "Cancelled"
)

// ParseBookingStatus validates a raw status value
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch status := BookingStatus(s); status {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("%w: unknown booking status %q", ErrValidation, s)
	}
}

// PaymentStatus represents the deposit state of a booking
type PaymentStatus string

const (
	PaymentAwaitingDeposit PaymentStatus = "awaiting_deposit"
	PaymentDepositPaid     PaymentStatus = "deposit_paid"
)

// Booking represents a reserved party window at a venue location
type Booking struct {
	ID         int64
	Reference  string
	PackageID  int64
	CustomerID *int64 // nil for guest bookings
	ChildIDs   []int64

	Location   string
	EventDate  time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	GuestCount int

	// Snapshot of add-ons priced at booking time
	AddOns []ResolvedAddOn

	Subtotal         money.Cents
	CleaningFee      money.Cents
	Total            money.Cents
	DepositAmount    money.Cents
	BalanceRemaining money.Cents

	PaymentStatus   PaymentStatus
	PaymentIntentID *string
	Status          BookingStatus
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking takes part in conflict detection
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsDepositPaid returns true if the deposit has been captured
func (b *Booking) IsDepositPaid() bool {
	return b.PaymentStatus == PaymentDepositPaid
}

// IsGuest returns true if the booking was made without a guardian account
func (b *Booking) IsGuest() bool {
	return b.CustomerID == nil
}

// AccessibleBy reports whether a guardian's customer record may act on the booking.
// Guest bookings carry no owner and are accessible to anyone holding the id.
func (b *Booking) AccessibleBy(customerID int64) bool {
	return b.CustomerID == nil || *b.CustomerID == customerID
}

// OwnedBy reports whether the booking belongs to the customer. Guest bookings have no owner.
func (b *Booking) OwnedBy(customerID int64) bool {
	return b.CustomerID != nil && *b.CustomerID == customerID
}

// Window returns the nominal (unbuffered) window of the booking in loc
func (b *Booking) Window(loc *time.Location) (TimeWindow, error) {
	return NewTimeWindow(b.EventDate, b.StartTime, b.EndTime, loc)
}

// ApplyPricing copies a pricing breakdown onto the booking
func (b *Booking) ApplyPricing(p PricingBreakdown) {
	b.Subtotal = p.Subtotal
	b.CleaningFee = p.CleaningFee
	b.Total = p.Total
	b.DepositAmount = p.DepositAmount
	b.BalanceRemaining = p.BalanceRemaining
}

// BookingsFilter narrows administrative booking listings
type BookingsFilter struct {
	Location *string
	Date     *time.Time
	Status   *BookingStatus
}
