package toggle_slot_lock

import "errors"

var (
	// ErrInvalidInput невалидные данные запроса
	ErrInvalidInput = errors.New("invalid input data")

	// ErrTurfNotFound площадка не найдена
	ErrTurfNotFound = errors.New("turf not found")

	// ErrSlotNotFound слот не найден в календаре
	ErrSlotNotFound = errors.New("slot not found")

	// ErrAccessDenied блокировать слоты может только владелец площадки
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal service error")
)
