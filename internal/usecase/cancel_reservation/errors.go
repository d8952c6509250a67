package cancel_reservation

import "errors"

var (
	// ErrInvalidInput невалидные данные запроса
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied отменять бронирование может только его автор
	ErrAccessDenied = errors.New("access denied")

	// ErrAlreadyCancelled бронирование уже отменено
	ErrAlreadyCancelled = errors.New("booking already cancelled")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("internal service error")
)
