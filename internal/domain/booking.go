package domain

import (
	"time"

	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// PaymentStatus represents the payment state of a booking
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentPending   PaymentStatus = "pending"
)

// Booking represents a reservation ledger entry. It references a slot by
// the value tuple (turf, date, start, end), not by the slot's storage id:
// the reserved flag in the turf calendar is a second, independently stored
// witness of the same fact.
type Booking struct {
	ID            int64
	UserID        int64
	TurfID        int64
	BookingDate   time.Time // нормализована к полуночи UTC
	StartTime     types.TimeString
	EndTime       types.TimeString
	PlayerCount   int
	TotalPrice    float64
	Status        BookingStatus
	PaymentStatus PaymentStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still claims its slot.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusCompleted
}

// SlotKey returns the identity tuple that links the booking to its slot.
func (b *Booking) SlotKey() SlotKey {
	return SlotKey{
		TurfID:    b.TurfID,
		Date:      b.BookingDate,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}

// TurfBookingsFilter фильтр для получения бронирований площадки
type TurfBookingsFilter struct {
	TurfID          int64          // Обязательный параметр
	Date            *time.Time     // Фильтр по дате (опционально, если nil - все даты)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
