package create_booking

import (
	"errors"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

var (
	// ErrGuardianNotFound возвращается, когда опекун не найден
	ErrGuardianNotFound = domain.NewError(domain.ErrNotFound, "create_booking: guardian not found")

	// ErrCustomerNotFound возвращается, когда у опекуна нет записи клиента
	ErrCustomerNotFound = domain.NewError(domain.ErrNotFound, "create_booking: customer record not found")

	// ErrUnsupportedLocation возвращается, когда площадка не входит в список поддерживаемых
	ErrUnsupportedLocation = domain.NewError(domain.ErrValidation, "create_booking: unsupported location")

	// ErrInvalidChildren возвращается, когда хотя бы один ребёнок не принадлежит клиенту
	ErrInvalidChildren = domain.NewError(domain.ErrValidation, "create_booking: children do not belong to guardian")

	// ErrInvalidDate возвращается, когда дата праздника в прошлом
	ErrInvalidDate = domain.NewError(domain.ErrValidation, "create_booking: event date is in the past")

	// ErrSlotUnavailable возвращается, когда окно пересекается с другим бронированием
	ErrSlotUnavailable = domain.NewError(domain.ErrConflict, "create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
