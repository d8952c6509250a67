package seed_slots

import "time"

// TemplateSlot один слот из дневного шаблона
type TemplateSlot struct {
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	MaxPlayers int    `json:"maxPlayers"`
}

// Request запрос на заполнение календаря слотов
type Request struct {
	TurfID      int64          `json:"-"`
	HorizonDays int            `json:"horizonDays,omitempty"`
	Template    []TemplateSlot `json:"template,omitempty"`
}

// Response результат заполнения календаря
type Response struct {
	TurfID       int64     `json:"turfId"`
	FromDate     time.Time `json:"fromDate"`
	Days         int       `json:"days"`
	SlotsCreated int64     `json:"slotsCreated"`
}
