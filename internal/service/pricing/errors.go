package pricing

import (
	"errors"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

var (
	// ErrPackageNotFound возвращается, когда пакет не найден или снят с продажи
	ErrPackageNotFound = domain.NewError(domain.ErrNotFound, "pricing: package not found")

	// ErrInvalidGuests возвращается при неположительном количестве гостей
	ErrInvalidGuests = domain.NewError(domain.ErrValidation, "pricing: guest count must be positive")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("pricing: internal error")
)
