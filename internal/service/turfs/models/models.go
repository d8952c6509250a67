package models

import "github.com/m04kA/SMC-TurfService/internal/domain"

// TurfResponse ответ с данными площадки
type TurfResponse struct {
	ID           int64      `json:"id"`
	OwnerID      int64      `json:"ownerId"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	PricePerHour float64    `json:"pricePerHour"`
	City         string     `json:"city"`
	Category     string     `json:"category"`
	Amenities    []string   `json:"amenities"`
	Dimensions   Dimensions `json:"dimensions"`
}

// Dimensions размеры игрового поля в метрах
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

// TurfListResponse ответ со списком площадок
type TurfListResponse struct {
	Turfs []TurfResponse `json:"turfs"`
}

// ListTurfsRequest запрос на получение списка площадок с фильтрами
type ListTurfsRequest struct {
	City     *string `json:"city,omitempty"`
	Category *string `json:"category,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListTurfsRequest) ToDomainFilter() domain.TurfsFilter {
	return domain.TurfsFilter{
		City:     r.City,
		Category: r.Category,
	}
}

// FromDomainTurf конвертирует domain модель в DTO
func FromDomainTurf(t *domain.Turf) *TurfResponse {
	if t == nil {
		return nil
	}

	amenities := t.Amenities
	if amenities == nil {
		amenities = []string{}
	}

	return &TurfResponse{
		ID:           t.ID,
		OwnerID:      t.OwnerID,
		Name:         t.Name,
		Description:  t.Description,
		PricePerHour: t.PricePerHour,
		City:         t.City,
		Category:     t.Category,
		Amenities:    amenities,
		Dimensions: Dimensions{
			Length: t.Dimensions.Length,
			Width:  t.Dimensions.Width,
		},
	}
}

// FromDomainTurfList конвертирует список domain моделей в DTO
func FromDomainTurfList(turfs []*domain.Turf) *TurfListResponse {
	resp := &TurfListResponse{
		Turfs: make([]TurfResponse, 0, len(turfs)),
	}
	for _, turf := range turfs {
		if turfResp := FromDomainTurf(turf); turfResp != nil {
			resp.Turfs = append(resp.Turfs, *turfResp)
		}
	}
	return resp
}
