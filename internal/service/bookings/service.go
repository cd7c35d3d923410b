package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PartyBookingService/internal/infra/storage/booking"
	guardianRepo "github.com/m04kA/SMC-PartyBookingService/internal/infra/storage/guardian"
	"github.com/m04kA/SMC-PartyBookingService/internal/service/bookings/models"
)

// Service сервис для работы с существующими бронированиями
type Service struct {
	bookingRepo  BookingRepository
	guardianRepo GuardianRepository
	repricer     Repricer
	publisher    EventPublisher
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	guardianRepo GuardianRepository,
	repricer Repricer,
	publisher EventPublisher,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		guardianRepo: guardianRepo,
		repricer:     repricer,
		publisher:    publisher,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetForGuardian получает бронирование опекуна
func (s *Service) GetForGuardian(ctx context.Context, bookingID, guardianID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetForGuardian: fetching booking id=%d for guardian=%d", bookingID, guardianID)

	customerID, err := s.customerOf(ctx, guardianID, "GetForGuardian")
	if err != nil {
		return nil, err
	}

	booking, err := s.getBooking(ctx, bookingID, "GetForGuardian")
	if err != nil {
		return nil, err
	}

	if !booking.OwnedBy(customerID) {
		s.logger.Warn("GetForGuardian: booking id=%d does not belong to guardian=%d", bookingID, guardianID)
		return nil, ErrBookingNotFound
	}

	return models.FromDomainBooking(booking), nil
}

// ListForGuardian получает бронирования опекуна.
// Опекун без записи клиента получает пустой список
func (s *Service) ListForGuardian(ctx context.Context, guardianID int64) (*models.BookingListResponse, error) {
	s.logger.Info("ListForGuardian: fetching bookings for guardian=%d", guardianID)

	guardian, err := s.guardianRepo.GetByID(ctx, guardianID)
	if err != nil {
		if errors.Is(err, guardianRepo.ErrGuardianNotFound) {
			return models.FromDomainBookingList(nil), nil
		}
		s.logger.Error("ListForGuardian: failed to get guardian id=%d: %v", guardianID, err)
		return nil, fmt.Errorf("%w: ListForGuardian - get guardian: %v", ErrInternal, err)
	}
	if guardian.CustomerID == nil {
		return models.FromDomainBookingList(nil), nil
	}

	bookings, err := s.bookingRepo.ListByCustomer(ctx, *guardian.CustomerID)
	if err != nil {
		s.logger.Error("ListForGuardian: repository error for customer=%d: %v", *guardian.CustomerID, err)
		return nil, fmt.Errorf("%w: ListForGuardian - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForGuardian: successfully fetched %d bookings for guardian=%d", len(bookings), guardianID)
	return models.FromDomainBookingList(bookings), nil
}

// ListAll получает все бронирования с фильтрами (для администраторов)
func (s *Service) ListAll(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter := domain.BookingsFilter{
		Location: req.Location,
		Date:     req.Date,
	}
	if req.Status != nil {
		status, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListAll: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
		}
		filter.Status = &status
	}

	bookings, err := s.bookingRepo.ListAll(ctx, filter)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAll: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование опекуна. Гостевые бронирования через этот путь не отменяются
func (s *Service) Cancel(ctx context.Context, bookingID, guardianID int64) (*models.StatusResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by guardian=%d", bookingID, guardianID)

	customerID, err := s.customerOf(ctx, guardianID, "Cancel")
	if err != nil {
		return nil, err
	}

	booking, err := s.getBooking(ctx, bookingID, "Cancel")
	if err != nil {
		return nil, err
	}

	if !booking.OwnedBy(customerID) {
		s.logger.Warn("Cancel: booking id=%d does not belong to guardian=%d", bookingID, guardianID)
		return nil, ErrBookingNotFound
	}

	if booking.IsCancelled() {
		s.logger.Warn("Cancel: booking id=%d already cancelled", bookingID)
		return nil, ErrAlreadyCancelled
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		return nil, s.repositoryError(err, bookingID, "Cancel")
	}

	s.publisher.Publish(domain.EventBookingCancelled, map[string]interface{}{
		"bookingId": bookingID,
	})

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return &models.StatusResponse{BookingID: bookingID, Status: string(domain.StatusCancelled)}, nil
}

// UpdateStatus безусловно перезаписывает статус (для администраторов).
// Таблицы переходов нет: любой статус можно сменить на любой, включая Confirmed без оплаты.
// Событие публикуется при каждом вызове, даже если статус не изменился
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.StatusResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	status, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	booking, err := s.getBooking(ctx, bookingID, "UpdateStatus")
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, status); err != nil {
		return nil, s.repositoryError(err, bookingID, "UpdateStatus")
	}

	s.publisher.Publish(domain.EventBookingStatusUpdated, map[string]interface{}{
		"bookingId":      booking.ID,
		"status":         string(status),
		"previousStatus": string(booking.Status),
	})

	s.logger.Info("UpdateStatus: booking id=%d status %s -> %s", bookingID, booking.Status, status)
	return &models.StatusResponse{BookingID: booking.ID, Status: string(status)}, nil
}

// RecalculatePricing пересчитывает суммы бронирования по текущим настройкам.
// Снимок дополнений не меняется. Оплаченный депозит не пересчитывается
func (s *Service) RecalculatePricing(ctx context.Context, bookingID int64) (*models.PricingResponse, error) {
	s.logger.Info("RecalculatePricing: booking id=%d", bookingID)

	var (
		result    *domain.Booking
		breakdown domain.PricingBreakdown
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, bookingID, "RecalculatePricing")
		if err != nil {
			return err
		}

		if booking.IsDepositPaid() {
			s.logger.Warn("RecalculatePricing: booking id=%d deposit already paid", bookingID)
			return ErrDepositAlreadyPaid
		}

		breakdown, err = s.repricer.Reprice(txCtx, booking)
		if err != nil {
			s.logger.Error("RecalculatePricing: reprice failed for booking id=%d: %v", bookingID, err)
			return err
		}

		booking.ApplyPricing(breakdown)
		if err := s.bookingRepo.UpdatePricing(txCtx, booking); err != nil {
			return s.repositoryError(err, bookingID, "RecalculatePricing")
		}

		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(domain.EventPricingRecalculated, map[string]interface{}{
		"bookingId":     result.ID,
		"total":         result.Total,
		"depositAmount": result.DepositAmount,
	})

	s.logger.Info("RecalculatePricing: booking id=%d total=%s deposit=%s", result.ID, result.Total, result.DepositAmount)
	return &models.PricingResponse{
		BookingID:        result.ID,
		Reference:        result.Reference,
		BasePrice:        breakdown.BasePrice,
		Subtotal:         result.Subtotal,
		CleaningFee:      result.CleaningFee,
		Total:            result.Total,
		DepositAmount:    result.DepositAmount,
		BalanceRemaining: result.BalanceRemaining,
	}, nil
}

// customerOf возвращает запись клиента опекуна
func (s *Service) customerOf(ctx context.Context, guardianID int64, op string) (int64, error) {
	guardian, err := s.guardianRepo.GetByID(ctx, guardianID)
	if err != nil {
		if errors.Is(err, guardianRepo.ErrGuardianNotFound) {
			s.logger.Warn("%s: guardian id=%d not found", op, guardianID)
			return 0, ErrGuardianNotFound
		}
		s.logger.Error("%s: failed to get guardian id=%d: %v", op, guardianID, err)
		return 0, fmt.Errorf("%w: %s - get guardian: %v", ErrInternal, op, err)
	}
	if guardian.CustomerID == nil {
		s.logger.Warn("%s: guardian id=%d has no customer record", op, guardianID)
		return 0, ErrGuardianNotFound
	}
	return *guardian.CustomerID, nil
}

func (s *Service) getBooking(ctx context.Context, bookingID int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, s.repositoryError(err, bookingID, op)
	}
	return booking, nil
}

func (s *Service) repositoryError(err error, bookingID int64, op string) error {
	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		s.logger.Warn("%s: booking id=%d not found", op, bookingID)
		return ErrBookingNotFound
	}
	s.logger.Error("%s: repository error for booking id=%d: %v", op, bookingID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
