package domain

import (
	"time"

	"github.com/m04kA/SMC-TurfService/pkg/types"
)

// Default seeding template values
const (
	DefaultSeedHorizonDays = 7
	MaxSeedHorizonDays     = 90
	DefaultSlotStartHour   = 6  // 06:00
	DefaultSlotEndHour     = 16 // 16:00, последний слот 15:00-16:00
	DefaultMaxPlayers      = 10
)

// Business validation constants
const (
	MinPlayerCount              = 1
	MaxPlayerCount              = 100
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// NormalizeDate приводит дату к полуночи UTC, отбрасывая время суток.
// Ledger и календарь слотов обязаны сравнивать даты бит-в-бит, как бы
// клиент ни сериализовал дату
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DefaultSlotTemplate возвращает дневной шаблон по умолчанию:
// часовые слоты с DefaultSlotStartHour до DefaultSlotEndHour
func DefaultSlotTemplate() []SlotTemplate {
	template := make([]SlotTemplate, 0, DefaultSlotEndHour-DefaultSlotStartHour)
	for hour := DefaultSlotStartHour; hour < DefaultSlotEndHour; hour++ {
		start := time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC)
		end := start.Add(time.Hour)
		template = append(template, SlotTemplate{
			StartTime:  types.NewTimeString(start),
			EndTime:    types.NewTimeString(end),
			MaxPlayers: DefaultMaxPlayers,
		})
	}
	return template
}
