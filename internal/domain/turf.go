package domain

import "time"

// Turf represents a sports ground with a per-date slot calendar
type Turf struct {
	ID           int64
	OwnerID      int64
	Name         string
	Description  string
	PricePerHour float64
	City         string
	Category     string
	Amenities    []string
	Dimensions   Dimensions

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Dimensions физические размеры площадки в метрах
type Dimensions struct {
	Length float64
	Width  float64
}

// TurfsFilter фильтр для списка площадок
type TurfsFilter struct {
	City     *string // Фильтр по городу (опционально)
	Category *string // Фильтр по категории (опционально)
}
