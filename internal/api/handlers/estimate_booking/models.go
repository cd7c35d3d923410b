package estimate_booking

import (
	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	estimateBooking "github.com/m04kA/SMC-PartyBookingService/internal/usecase/estimate_booking"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

type AddOnRequest struct {
	Code     string `json:"code" validate:"required"`
	Quantity int    `json:"quantity,omitempty" validate:"min=0"`
}

// EstimateRequest HTTP request model
type EstimateRequest struct {
	PackageID int64          `json:"packageId" validate:"required,gt=0"`
	Guests    int            `json:"guests" validate:"required,gt=0"`
	AddOns    []AddOnRequest `json:"addOns,omitempty" validate:"dive"`
}

// EstimateResponse HTTP response model
type EstimateResponse struct {
	BasePrice        money.Cents            `json:"basePrice"`
	ExtraGuestCount  int                    `json:"extraGuestCount"`
	ExtraGuestFee    money.Cents            `json:"extraGuestFee"`
	ExtraGuestTotal  money.Cents            `json:"extraGuestTotal"`
	AddOns           []domain.ResolvedAddOn `json:"addOns"`
	AddOnTotal       money.Cents            `json:"addOnTotal"`
	Subtotal         money.Cents            `json:"subtotal"`
	CleaningFee      money.Cents            `json:"cleaningFee"`
	Total            money.Cents            `json:"total"`
	DepositAmount    money.Cents            `json:"depositAmount"`
	BalanceRemaining money.Cents            `json:"balanceRemaining"`
	DurationMinutes  int                    `json:"durationMinutes"`
	Currency         string                 `json:"currency"`
}

func (r *EstimateRequest) ToUseCaseRequest() *estimateBooking.Request {
	addOns := make([]domain.AddOnSelection, 0, len(r.AddOns))
	for _, a := range r.AddOns {
		addOns = append(addOns, domain.AddOnSelection{Code: a.Code, Quantity: a.Quantity})
	}
	return &estimateBooking.Request{
		PackageID: r.PackageID,
		Guests:    r.Guests,
		AddOns:    addOns,
	}
}

func FromUseCaseResponse(resp *estimateBooking.Response) *EstimateResponse {
	addOns := resp.AddOns
	if addOns == nil {
		addOns = []domain.ResolvedAddOn{}
	}
	return &EstimateResponse{
		BasePrice:        resp.BasePrice,
		ExtraGuestCount:  resp.ExtraGuestCount,
		ExtraGuestFee:    resp.ExtraGuestFee,
		ExtraGuestTotal:  resp.ExtraGuestTotal,
		AddOns:           addOns,
		AddOnTotal:       resp.AddOnTotal,
		Subtotal:         resp.Subtotal,
		CleaningFee:      resp.CleaningFee,
		Total:            resp.Total,
		DepositAmount:    resp.DepositAmount,
		BalanceRemaining: resp.BalanceRemaining,
		DurationMinutes:  resp.DurationMinutes,
		Currency:         resp.Currency,
	}
}
