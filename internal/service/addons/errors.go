package addons

import (
	"errors"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

var (
	// ErrUnknownAddOn возвращается, когда кода дополнения нет в каталоге
	ErrUnknownAddOn = domain.NewError(domain.ErrValidation, "addons: unknown add-on")

	// ErrInvalidQuantity возвращается, когда количество вне диапазона 1..10
	ErrInvalidQuantity = domain.NewError(domain.ErrValidation, "addons: invalid add-on quantity")

	// ErrInternal возвращается при ошибках чтения каталога
	ErrInternal = errors.New("addons: internal error")
)
