package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	createReservation "github.com/m04kA/SMC-TurfService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	TurfID      int64   `json:"turfId"`
	Date        string  `json:"date"`      // "2024-06-10"
	TimeRange   string  `json:"timeRange"` // "09:00-10:00"
	PlayerCount int     `json:"playerCount"`
	TotalPrice  float64 `json:"totalPrice"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	Outcome       string  `json:"outcome"` // "created" | "already_booked"
	BookingID     int64   `json:"bookingId"`
	UserID        int64   `json:"userId"`
	TurfID        int64   `json:"turfId"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	PlayerCount   int     `json:"playerCount"`
	TotalPrice    float64 `json:"totalPrice"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	CreatedAt     string  `json:"createdAt"`
}

// SlotSyncFailureResponse тело ответа при частичном сбое записи:
// бронирование сохранено, но слот в календаре не помечен занятым
type SlotSyncFailureResponse struct {
	Error     string `json:"error"`
	Detail    string `json:"detail"`
	BookingID int64  `json:"bookingId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:      userID,
		TurfID:      r.TurfID,
		Date:        date,
		TimeRange:   r.TimeRange,
		PlayerCount: r.PlayerCount,
		TotalPrice:  r.TotalPrice,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	b := resp.Booking
	return &ReservationResponse{
		Outcome:       string(resp.Outcome),
		BookingID:     b.ID,
		UserID:        b.UserID,
		TurfID:        b.TurfID,
		Date:          b.BookingDate.Format(domain.DateFormat),
		StartTime:     b.StartTime.String(),
		EndTime:       b.EndTime.String(),
		PlayerCount:   b.PlayerCount,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}
