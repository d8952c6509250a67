package toggle_slot_lock

import (
	"time"

	"github.com/m04kA/SMC-TurfService/internal/domain"
	toggleSlotLock "github.com/m04kA/SMC-TurfService/internal/usecase/toggle_slot_lock"
)

// ToggleSlotLockRequest HTTP request model
type ToggleSlotLockRequest struct {
	Date      string `json:"date"`      // "2024-06-10"
	TimeRange string `json:"timeRange"` // "09:00-10:00"
}

// SlotLockResponse HTTP response model
type SlotLockResponse struct {
	TurfID    int64  `json:"turfId"`
	Date      string `json:"date"`
	TimeRange string `json:"timeRange"`
	LockState string `json:"lockState"` // "locked" | "unlocked"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ToggleSlotLockRequest) ToUseCaseRequest(turfID, userID int64) (toggleSlotLock.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return toggleSlotLock.Request{}, err
	}

	return toggleSlotLock.Request{
		TurfID:    turfID,
		UserID:    userID,
		Date:      date,
		TimeRange: r.TimeRange,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *toggleSlotLock.Response) *SlotLockResponse {
	return &SlotLockResponse{
		TurfID:    resp.TurfID,
		Date:      resp.Date.Format(domain.DateFormat),
		TimeRange: resp.TimeRange,
		LockState: string(resp.LockState),
	}
}
