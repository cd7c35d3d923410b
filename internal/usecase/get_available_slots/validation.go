package get_available_slots

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, locations []string) error {
	if strings.TrimSpace(req.Location) == "" {
		return fmt.Errorf("%w: location is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	for _, l := range locations {
		if l == req.Location {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedLocation, req.Location)
}
