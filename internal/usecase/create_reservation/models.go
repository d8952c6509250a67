package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// Outcome исход обработки запроса на бронирование
type Outcome string

const (
	// OutcomeCreated слот был свободен, бронирование создано этим запросом
	OutcomeCreated Outcome = "created"

	// OutcomeAlreadyBooked на кортеж уже существует активное бронирование.
	// Повторная отправка того же запроса и запрос другого пользователя на
	// занятый слот неразличимы по журналу и дают один и тот же исход
	OutcomeAlreadyBooked Outcome = "already_booked"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID      int64     // ID пользователя
	TurfID      int64     // ID площадки
	Date        time.Time // Дата бронирования (время суток отбрасывается)
	TimeRange   string    // Диапазон слота, например "09:00-10:00"
	PlayerCount int       // Количество игроков
	TotalPrice  float64   // Итоговая цена
}

// Response модель ответа с бронированием и исходом
type Response struct {
	Outcome Outcome
	Booking *domain.Booking
}
