package cancel_reservation

import "github.com/m04kA/SMC-TurfService/internal/domain"

// Request запрос на отмену бронирования
type Request struct {
	BookingID int64  `json:"-"`
	UserID    int64  `json:"-"`
	Reason    string `json:"reason,omitempty"`
}

// Response отменённое бронирование
type Response struct {
	Booking *domain.Booking `json:"booking"`
}
