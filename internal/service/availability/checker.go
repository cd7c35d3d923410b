package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/jinzhu/now"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

// Checker проверяет пересечение окна с активными бронированиями площадки.
// Каждое окно (и кандидат, и существующие) расширяется на половину буфера с обеих сторон,
// так что между соседними бронированиями остаётся не меньше buffer
type Checker struct {
	repo   BookingRepository
	pad    time.Duration
	loc    *time.Location
	logger Logger
}

// NewChecker создает новый экземпляр проверки доступности
func NewChecker(repo BookingRepository, buffer time.Duration, loc *time.Location, logger Logger) *Checker {
	if loc == nil {
		loc = time.UTC
	}
	return &Checker{
		repo:   repo,
		pad:    buffer / 2,
		loc:    loc,
		logger: logger,
	}
}

// IsAvailable возвращает true, если окно не пересекается ни с одним активным бронированием
// на площадке, кроме excludeID. Проверка не атомарна сама по себе: при создании бронирования
// её нужно повторять внутри транзакции под блокировкой (location, date)
func (c *Checker) IsAvailable(ctx context.Context, location string, window domain.TimeWindow, excludeID *int64) (bool, error) {
	if !window.End.After(window.Start) {
		return false, nil
	}

	date := now.With(window.Start.In(c.loc)).BeginningOfDay()

	bookings, err := c.repo.FindActiveByLocationAndDate(ctx, location, date, excludeID)
	if err != nil {
		c.logger.Error("IsAvailable: failed to get bookings for location=%s date=%s: %v",
			location, date.Format(domain.DateFormat), err)
		return false, fmt.Errorf("%w: find bookings: %w", ErrInternal, err)
	}

	if conflict := c.firstConflict(window, bookings, excludeID); conflict != nil {
		c.logger.Info("IsAvailable: %s %s-%s conflicts with booking id=%d",
			location, window.Start.Format(domain.TimeFormat), window.End.Format(domain.TimeFormat), conflict.ID)
		return false, nil
	}

	return true, nil
}

// Conflicts сообщает, пересекается ли кандидат с одним из бронирований
func (c *Checker) Conflicts(window domain.TimeWindow, bookings []*domain.Booking, excludeID *int64) bool {
	return c.firstConflict(window, bookings, excludeID) != nil
}

func (c *Checker) firstConflict(window domain.TimeWindow, bookings []*domain.Booking, excludeID *int64) *domain.Booking {
	candidate := window.Buffered(c.pad)

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}

		existing, err := b.Window(c.loc)
		if err != nil {
			// Некорректное время у существующего бронирования считаем занятостью
			c.logger.Warn("IsAvailable: booking id=%d has malformed window: %v", b.ID, err)
			return b
		}

		if candidate.Overlaps(existing.Buffered(c.pad)) {
			return b
		}
	}

	return nil
}
