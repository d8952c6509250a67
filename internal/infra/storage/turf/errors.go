package turf

import "errors"

var (
	// ErrTurfNotFound возвращается, когда площадка не найдена
	ErrTurfNotFound = errors.New("turf.repository: turf not found")

	// ErrScheduleNotFound возвращается, когда на дату нет засеянных слотов
	ErrScheduleNotFound = errors.New("turf.repository: no slots seeded for this date")

	// ErrSlotNotFound возвращается, когда слот не найден по кортежу
	ErrSlotNotFound = errors.New("turf.repository: slot not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("turf.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("turf.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("turf.repository: failed to scan row")
)
