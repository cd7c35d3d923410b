package domain

import "errors"

// Error categories. Package-level sentinels wrap one of these so that the
// transport layer can map a failure to a status code with errors.Is.
var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrPayment       = errors.New("payment error")
	ErrConfiguration = errors.New("configuration error")
)

// categorized is a sentinel that belongs to an error category
type categorized struct {
	msg      string
	category error
}

func (e *categorized) Error() string { return e.msg }
func (e *categorized) Unwrap() error { return e.category }

// NewError creates a sentinel error that matches category via errors.Is
func NewError(category error, msg string) error {
	return &categorized{msg: msg, category: category}
}
