package create_reservation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных;
	// запрос отклоняется до любой записи
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrTurfNotFound возвращается, когда площадка не найдена
	ErrTurfNotFound = errors.New("create_reservation: turf not found")

	// ErrSlotOutOfSync возвращается, когда бронирование записано в журнал,
	// но флаг слота в календаре обновить не удалось. Бронирование при этом
	// сохраняется ради аудита; расхождение устраняет внешняя сверка
	ErrSlotOutOfSync = errors.New("create_reservation: booking persisted but slot flag not updated")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// SlotSyncError несёт ID сохранённого бронирования, чтобы вызывающая
// сторона могла сослаться на него при сверке
type SlotSyncError struct {
	BookingID int64
}

func (e *SlotSyncError) Error() string {
	return fmt.Sprintf("%v (booking id=%d)", ErrSlotOutOfSync, e.BookingID)
}

// Unwrap позволяет распознавать ошибку через errors.Is(err, ErrSlotOutOfSync)
func (e *SlotSyncError) Unwrap() error {
	return ErrSlotOutOfSync
}
