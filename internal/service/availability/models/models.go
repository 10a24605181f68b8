package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// CreateWindowRequest запрос на создание окна доступности
type CreateWindowRequest struct {
	UserID      uuid.UUID `json:"-"`
	DayOfWeek   int       `json:"dayOfWeek"`   // 0 = воскресенье ... 6 = суббота
	StartTime   string    `json:"startTime"`   // "09:00"
	EndTime     string    `json:"endTime"`     // "17:00"
	IsRecurring *bool     `json:"isRecurring"` // по умолчанию true
}

// WindowResponse ответ с данными окна доступности
type WindowResponse struct {
	ID          uuid.UUID `json:"id"`
	ProviderID  uuid.UUID `json:"providerId"`
	DayOfWeek   int       `json:"dayOfWeek"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	IsRecurring bool      `json:"isRecurring"`
	CreatedAt   time.Time `json:"createdAt"`
}

// WindowListResponse ответ со списком окон
type WindowListResponse struct {
	Windows []WindowResponse `json:"availability"`
}

// FromDomainWindow конвертирует domain модель в DTO
func FromDomainWindow(w *domain.AvailabilityWindow) *WindowResponse {
	if w == nil {
		return nil
	}

	return &WindowResponse{
		ID:          w.ID,
		ProviderID:  w.ProviderID,
		DayOfWeek:   w.DayOfWeek,
		StartTime:   w.StartTime.String(),
		EndTime:     w.EndTime.String(),
		IsRecurring: w.IsRecurring,
		CreatedAt:   w.CreatedAt,
	}
}

// FromDomainWindowList конвертирует список domain моделей в DTO
func FromDomainWindowList(windows []*domain.AvailabilityWindow) *WindowListResponse {
	resp := &WindowListResponse{
		Windows: make([]WindowResponse, 0, len(windows)),
	}

	for _, w := range windows {
		if r := FromDomainWindow(w); r != nil {
			resp.Windows = append(resp.Windows, *r)
		}
	}

	return resp
}
