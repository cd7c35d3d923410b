package create_booking

import (
	"time"

	"github.com/m04kA/SMC-PartyBookingService/internal/domain"
	"github.com/m04kA/SMC-PartyBookingService/pkg/money"
	"github.com/m04kA/SMC-PartyBookingService/pkg/types"
)

// Details общие параметры праздника
type Details struct {
	PackageID int64                   // ID пакета
	Location  string                  // Площадка из списка поддерживаемых
	EventDate time.Time               // Дата праздника (без времени)
	StartTime types.TimeString        // Время начала, HH:MM
	Guests    int                     // Количество гостей
	AddOns    []domain.AddOnSelection // Дополнения (опционально)
	Notes     *string                 // Заметки (опционально)
}

// Request запрос на бронирование от авторизованного опекуна
type Request struct {
	GuardianID int64   // ID опекуна из токена
	ChildIDs   []int64 // Дети, для которых праздник
	Details
}

// GuestRequest запрос на бронирование без аккаунта
type GuestRequest struct {
	Contact domain.GuestContact
	Details
}

// Response созданное бронирование
type Response struct {
	BookingID        int64
	Reference        string
	Status           domain.BookingStatus
	PaymentStatus    domain.PaymentStatus
	StartTime        types.TimeString
	EndTime          types.TimeString
	Subtotal         money.Cents
	CleaningFee      money.Cents
	Total            money.Cents
	DepositAmount    money.Cents
	BalanceRemaining money.Cents
}
