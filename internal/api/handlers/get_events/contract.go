package get_events

import "github.com/m04kA/SMC-PartyBookingService/internal/domain"

type EventSource interface {
	Recent(limit int) []domain.Event
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
