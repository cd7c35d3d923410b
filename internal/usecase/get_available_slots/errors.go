package get_available_slots

import (
	"errors"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

var (
	// ErrUnsupportedLocation возвращается, когда площадка не входит в список поддерживаемых
	ErrUnsupportedLocation = domain.NewError(domain.ErrValidation, "get_available_slots: unsupported location")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
