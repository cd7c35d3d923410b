package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-PartyBookingService/pkg/types"
)

// Settings сетка слотов из конфигурации
type Settings struct {
	Locations        []string           // Поддерживаемые площадки
	DailySlots       []types.TimeString // Фиксированные времена начала
	DurationMinutes  int                // Базовая длительность праздника
	ExtraHourMinutes int                // Шаг продления
	Timezone         *time.Location     // Часовой пояс площадок
}

// Request модель запроса сетки слотов
type Request struct {
	Location string    // Площадка
	Date     time.Time // Дата (без времени)
}

// Response модель ответа с сеткой слотов
type Response struct {
	Date     time.Time // Дата, на которую запрашивались слоты
	Location string    // Площадка
	Slots    []Slot    // Слоты в порядке сетки
}

// Slot модель слота сетки
type Slot struct {
	StartTime         types.TimeString // Время начала слота (например, "10:00")
	Available         bool             // Базовое окно свободно
	SupportsExtraHour bool             // Свободно и окно с продлением
}
