package config

import (
	"errors"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных значениях настроек
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "pricing config: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("pricing config: internal error")
)
