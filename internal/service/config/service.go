package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/config/models"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
)

// Service настройки ценообразования. Бронирование только читает их, меняет только администратор
type Service struct {
	repo      PricingConfigRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo PricingConfigRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// Current возвращает действующие настройки. Отсутствующие или испорченные ключи
// заменяются значениями по умолчанию
func (s *Service) Current(ctx context.Context) (domain.PricingConfig, error) {
	cfg := domain.DefaultPricingConfig()

	values, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("Current: failed to read pricing config: %v", err)
		return cfg, fmt.Errorf("%w: read pricing config: %v", ErrInternal, err)
	}

	if raw, ok := values[domain.PricingKeyCleaningFee]; ok {
		if fee, err := money.Parse(raw); err == nil && fee >= 0 {
			cfg.CleaningFee = fee
		} else {
			s.logger.Warn("Current: invalid %s=%q, using default", domain.PricingKeyCleaningFee, raw)
		}
	}

	if raw, ok := values[domain.PricingKeyDepositPercentage]; ok {
		if pct, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && validPercent(pct) {
			cfg.DepositPercent = pct
		} else {
			s.logger.Warn("Current: invalid %s=%q, using default", domain.PricingKeyDepositPercentage, raw)
		}
	}

	if raw, ok := values[domain.PricingKeyExtraGuestFeeSource]; ok && strings.TrimSpace(raw) != "" {
		cfg.ExtraGuestFeeSource = strings.TrimSpace(raw)
	}

	return cfg, nil
}

// Get возвращает настройки для админки
func (s *Service) Get(ctx context.Context) (*models.PricingConfigResponse, error) {
	cfg, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomain(cfg), nil
}

// Update записывает переданные значения, остальные не трогает
func (s *Service) Update(ctx context.Context, req *models.UpdatePricingConfigRequest) (*models.PricingConfigResponse, error) {
	updates, err := validateUpdate(req)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		for _, key := range []string{
			domain.PricingKeyCleaningFee,
			domain.PricingKeyDepositPercentage,
			domain.PricingKeyExtraGuestFeeSource,
		} {
			value, ok := updates[key]
			if !ok {
				continue
			}
			if err := s.repo.Upsert(txCtx, key, value); err != nil {
				return fmt.Errorf("%w: upsert %s: %v", ErrInternal, key, err)
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Update: %v", err)
		return nil, err
	}

	s.logger.Info("Update: pricing config updated, keys=%d", len(updates))
	return s.Get(ctx)
}

func validateUpdate(req *models.UpdatePricingConfigRequest) (map[string]string, error) {
	updates := make(map[string]string)

	if req.CleaningFee != nil {
		if *req.CleaningFee < 0 {
			return nil, fmt.Errorf("%w: cleaning fee must not be negative", ErrInvalidInput)
		}
		updates[domain.PricingKeyCleaningFee] = req.CleaningFee.String()
	}

	if req.DepositPercentage != nil {
		if !validPercent(*req.DepositPercentage) {
			return nil, fmt.Errorf("%w: deposit percentage must be within 0..100", ErrInvalidInput)
		}
		updates[domain.PricingKeyDepositPercentage] = strconv.FormatFloat(*req.DepositPercentage, 'f', -1, 64)
	}

	if req.ExtraGuestFeeSource != nil {
		source := strings.TrimSpace(*req.ExtraGuestFeeSource)
		if source == "" {
			return nil, fmt.Errorf("%w: extra guest fee source must not be empty", ErrInvalidInput)
		}
		updates[domain.PricingKeyExtraGuestFeeSource] = source
	}

	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	return updates, nil
}

func validPercent(pct float64) bool {
	return pct >= 0 && pct <= 100
}
