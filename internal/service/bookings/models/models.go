package models

import (
	"time"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

// Request модели

// UpdateStatusRequest запрос на административную смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListBookingsRequest фильтры административного списка
type ListBookingsRequest struct {
	Location *string    `json:"location,omitempty"`
	Date     *time.Time `json:"date,omitempty"`
	Status   *string    `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID               int64                  `json:"id"`
	Reference        string                 `json:"reference"`
	PackageID        int64                  `json:"packageId"`
	CustomerID       *int64                 `json:"customerId,omitempty"`
	ChildIDs         []int64                `json:"childIds"`
	Location         string                 `json:"location"`
	EventDate        string                 `json:"eventDate"` // "2026-11-14"
	StartTime        string                 `json:"startTime"` // "10:00"
	EndTime          string                 `json:"endTime"`   // "12:00"
	Guests           int                    `json:"guests"`
	AddOns           []domain.ResolvedAddOn `json:"addOns"`
	Subtotal         money.Cents            `json:"subtotal"`
	CleaningFee      money.Cents            `json:"cleaningFee"`
	Total            money.Cents            `json:"total"`
	DepositAmount    money.Cents            `json:"depositAmount"`
	BalanceRemaining money.Cents            `json:"balanceRemaining"`
	PaymentStatus    string                 `json:"paymentStatus"`
	PaymentIntentID  *string                `json:"paymentIntentId,omitempty"`
	Status           string                 `json:"status"`
	IsGuestBooking   bool                   `json:"isGuestBooking"`
	Notes            *string                `json:"notes,omitempty"`
	CreatedAt        time.Time              `json:"createdAt"`
	UpdatedAt        time.Time              `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// StatusResponse результат смены статуса
type StatusResponse struct {
	BookingID int64  `json:"bookingId"`
	Status    string `json:"status"`
}

// PricingResponse результат пересчёта цены
type PricingResponse struct {
	BookingID        int64       `json:"bookingId"`
	Reference        string      `json:"reference"`
	BasePrice        money.Cents `json:"basePrice"`
	Subtotal         money.Cents `json:"subtotal"`
	CleaningFee      money.Cents `json:"cleaningFee"`
	Total            money.Cents `json:"total"`
	DepositAmount    money.Cents `json:"depositAmount"`
	BalanceRemaining money.Cents `json:"balanceRemaining"`
}

// Конвертеры

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	addOns := b.AddOns
	if addOns == nil {
		addOns = []domain.ResolvedAddOn{}
	}
	childIDs := b.ChildIDs
	if childIDs == nil {
		childIDs = []int64{}
	}

	return &BookingResponse{
		ID:               b.ID,
		Reference:        b.Reference,
		PackageID:        b.PackageID,
		CustomerID:       b.CustomerID,
		ChildIDs:         childIDs,
		Location:         b.Location,
		EventDate:        b.EventDate.Format(domain.DateFormat),
		StartTime:        b.StartTime.String(),
		EndTime:          b.EndTime.String(),
		Guests:           b.GuestCount,
		AddOns:           addOns,
		Subtotal:         b.Subtotal,
		CleaningFee:      b.CleaningFee,
		Total:            b.Total,
		DepositAmount:    b.DepositAmount,
		BalanceRemaining: b.BalanceRemaining,
		PaymentStatus:    string(b.PaymentStatus),
		PaymentIntentID:  b.PaymentIntentID,
		Status:           string(b.Status),
		IsGuestBooking:   b.IsGuest(),
		Notes:            b.Notes,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	responses := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, *FromDomainBooking(b))
	}

	return &BookingListResponse{
		Bookings: responses,
		Total:    len(responses),
	}
}
