package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetTurfBookingsRequest запрос на получение бронирований площадки
type GetTurfBookingsRequest struct {
	UserID          int64      `json:"userId"`
	TurfID          int64      `json:"turfId"`
	Date            *time.Time `json:"date,omitempty"`            // Фильтр по дате (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetTurfBookingsRequest) ToDomainFilter() (domain.TurfBookingsFilter, error) {
	filter := domain.TurfBookingsFilter{
		TurfID:          r.TurfID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Date != nil {
		date := domain.NormalizeDate(*r.Date)
		filter.Date = &date
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// GetUnsyncedBookingsRequest запрос на аудит несинхронизированных бронирований
type GetUnsyncedBookingsRequest struct {
	UserID int64      `json:"userId"`
	TurfID int64      `json:"turfId"`
	Date   *time.Time `json:"date,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	TurfID        int64   `json:"turfId"`
	BookingDate   string  `json:"bookingDate"` // "2024-06-10"
	StartTime     string  `json:"startTime"`   // "10:00"
	EndTime       string  `json:"endTime"`     // "11:00"
	PlayerCount   int     `json:"playerCount"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		TurfID:             b.TurfID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		PlayerCount:        b.PlayerCount,
		TotalPrice:         b.TotalPrice,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
