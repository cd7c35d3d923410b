package bookings

import (
	"errors"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено или принадлежит другому клиенту
	ErrBookingNotFound = domain.NewError(domain.ErrNotFound, "bookings: booking not found")

	// ErrGuardianNotFound возвращается, когда опекун или его запись клиента не найдены
	ErrGuardianNotFound = domain.NewError(domain.ErrNotFound, "bookings: guardian not found")

	// ErrAlreadyCancelled возвращается при повторной отмене
	ErrAlreadyCancelled = domain.NewError(domain.ErrConflict, "bookings: booking already cancelled")

	// ErrDepositAlreadyPaid возвращается при пересчёте цены оплаченного бронирования
	ErrDepositAlreadyPaid = domain.NewError(domain.ErrConflict, "bookings: deposit already paid")

	// ErrInvalidStatus возвращается при попытке установить неизвестный статус
	ErrInvalidStatus = domain.NewError(domain.ErrValidation, "bookings: invalid booking status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
