package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrTurfNotFound возвращается, когда площадка не найдена
	ErrTurfNotFound = errors.New("get_available_slots: turf not found")

	// ErrScheduleNotFound возвращается, когда на дату нет засеянных слотов
	ErrScheduleNotFound = errors.New("get_available_slots: no slots seeded for this date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
