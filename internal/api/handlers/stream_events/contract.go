package stream_events

import "github.com/m04kA/SMC-PartyBookingService/internal/domain"

type EventSource interface {
	Subscribe(buffer int) (<-chan domain.Event, func())
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
