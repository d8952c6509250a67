package get_available_slots

import (
	"github.com/m04kA/SMC-TurfService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-TurfService/internal/usecase/get_available_slots"
)

// SlotResponse доступный слот в HTTP ответе
type SlotResponse struct {
	StartTime  string `json:"startTime"` // "09:00"
	EndTime    string `json:"endTime"`   // "10:00"
	MaxPlayers int    `json:"maxPlayers"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	TurfID int64          `json:"turfId"`
	Date   string         `json:"date"` // "2024-06-10"
	Slots  []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime:  s.StartTime.String(),
			EndTime:    s.EndTime.String(),
			MaxPlayers: s.MaxPlayers,
		})
	}

	return &AvailableSlotsResponse{
		TurfID: resp.TurfID,
		Date:   resp.Date.Format(domain.DateFormat),
		Slots:  slots,
	}
}
