package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	TurfID int64     // ID площадки
	Date   time.Time // Запрашиваемая дата (время суток отбрасывается)
}

// Slot доступный для бронирования слот
type Slot struct {
	StartTime  types.TimeString
	EndTime    types.TimeString
	MaxPlayers int
}

// Response модель ответа со свободными слотами на дату
type Response struct {
	TurfID int64
	Date   time.Time
	Slots  []Slot
}
