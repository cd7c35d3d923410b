package deposit_payment

import (
	"fmt"
	"strings"
)

func validateIDs(guardianID, bookingID int64) error {
	if guardianID <= 0 {
		return fmt.Errorf("%w: guardianId must be positive", ErrInvalidInput)
	}
	if bookingID <= 0 {
		return fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}
	return nil
}

func validateConfirm(req *ConfirmRequest) error {
	if err := validateIDs(req.GuardianID, req.BookingID); err != nil {
		return err
	}
	if strings.TrimSpace(req.IntentHandle) == "" {
		return fmt.Errorf("%w: paymentIntentId is required", ErrInvalidInput)
	}
	return nil
}
