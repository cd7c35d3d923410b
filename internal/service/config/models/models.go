package models

import (
	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

// UpdatePricingConfigRequest частичное обновление, nil поля не меняются
type UpdatePricingConfigRequest struct {
	CleaningFee         *money.Cents `json:"cleaningFee,omitempty"`
	DepositPercentage   *float64     `json:"depositPercentage,omitempty"`
	ExtraGuestFeeSource *string      `json:"extraGuestFeeSource,omitempty"`
}

// PricingConfigResponse действующие настройки
type PricingConfigResponse struct {
	CleaningFee           money.Cents `json:"cleaningFee"`
	DepositPercentage     float64     `json:"depositPercentage"`
	ExtraGuestFeeSource   string      `json:"extraGuestFeeSource"`
	ExtraGuestFallbackFee money.Cents `json:"extraGuestFallbackFee"`
}

// FromDomain конвертирует доменную модель в ответ
func FromDomain(cfg domain.PricingConfig) *PricingConfigResponse {
	return &PricingConfigResponse{
		CleaningFee:           cfg.CleaningFee,
		DepositPercentage:     cfg.DepositPercent,
		ExtraGuestFeeSource:   cfg.ExtraGuestFeeSource,
		ExtraGuestFallbackFee: cfg.ExtraGuestFallbackFee,
	}
}
