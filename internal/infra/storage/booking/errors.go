package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateBooking возвращается при нарушении уникальности активного
	// бронирования на кортеж (turf, date, start, end); хранилище само
	// гарантирует этот инвариант частичным уникальным индексом
	ErrDuplicateBooking = errors.New("booking.repository: active booking already exists for this slot")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
