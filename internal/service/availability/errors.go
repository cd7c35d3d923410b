package availability

import "errors"

var (
	// ErrInternal возвращается при ошибках чтения бронирований
	ErrInternal = errors.New("availability: internal error")
)
