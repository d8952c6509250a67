package seed_slots

import "errors"

var (
	// ErrInvalidInput невалидные данные запроса
	ErrInvalidInput = errors.New("invalid input data")

	// ErrTurfNotFound площадка не найдена
	ErrTurfNotFound = errors.New("turf not found")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal service error")
)
