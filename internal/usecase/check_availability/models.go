package check_availability

import (
	"time"

	"github.com/m04kA/SMC-PartyBookingService/pkg/types"
)

// Request модель запроса проверки одного окна
type Request struct {
	GuardianID      int64            // ID опекуна (для логирования)
	Location        string           // Площадка
	EventDate       time.Time        // Дата (без времени)
	StartTime       types.TimeString // Время начала, HH:MM
	IgnoreBookingID *int64           // Бронирование, которое не учитывается (перенос своей брони)
}

// Response результат проверки
type Response struct {
	Available bool
}
