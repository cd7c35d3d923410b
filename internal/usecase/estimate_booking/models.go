package estimate_booking

import (
	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

// Currency валюта расчётов
const Currency = "USD"

// Request модель запроса оценки стоимости
type Request struct {
	PackageID int64
	Guests    int
	AddOns    []domain.AddOnSelection
}

// Response полная разбивка стоимости без сохранения
type Response struct {
	BasePrice        money.Cents
	ExtraGuestCount  int
	ExtraGuestFee    money.Cents
	ExtraGuestTotal  money.Cents
	AddOns           []domain.ResolvedAddOn
	AddOnTotal       money.Cents
	Subtotal         money.Cents
	CleaningFee      money.Cents
	Total            money.Cents
	DepositAmount    money.Cents
	BalanceRemaining money.Cents
	DurationMinutes  int
	Currency         string
}
