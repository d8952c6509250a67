package cancel_reservation

import (
	"time"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	cancelReservation "github.com/m04kA/SMC-TurfService/internal/usecase/cancel_reservation"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelledBookingResponse HTTP response model
type CancelledBookingResponse struct {
	BookingID          int64   `json:"bookingId"`
	UserID             int64   `json:"userId"`
	TurfID             int64   `json:"turfId"`
	Date               string  `json:"date"`
	StartTime          string  `json:"startTime"`
	EndTime            string  `json:"endTime"`
	Status             string  `json:"status"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelReservation.Response) *CancelledBookingResponse {
	b := resp.Booking
	out := &CancelledBookingResponse{
		BookingID:          b.ID,
		UserID:             b.UserID,
		TurfID:             b.TurfID,
		Date:               b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
	}
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &cancelledStr
	}
	return out
}
