package turfs

import "errors"

var (
	// ErrTurfNotFound возвращается, когда площадка не найдена
	ErrTurfNotFound = errors.New("turf not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
