package toggle_slot_lock

import (
	"time"

	"github.com/m04kA/SMC-TurfService/internal/domain"
)

// Request запрос на переключение блокировки слота
type Request struct {
	TurfID    int64     `json:"-"`
	UserID    int64     `json:"-"`
	Date      time.Time `json:"date"`
	TimeRange string    `json:"timeRange"`
}

// Response новое состояние блокировки слота
type Response struct {
	TurfID    int64            `json:"turfId"`
	Date      time.Time        `json:"date"`
	TimeRange string           `json:"timeRange"`
	LockState domain.LockState `json:"lockState"`
}
