package create_availability

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/service/availability/models"
)

// CreateAvailabilityRequest HTTP request model
type CreateAvailabilityRequest struct {
	DayOfWeek   *int   `json:"dayOfWeek" validate:"required,min=0,max=6"`
	StartTime   string `json:"startTime" validate:"required"`
	EndTime     string `json:"endTime" validate:"required"`
	IsRecurring *bool  `json:"isRecurring,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateAvailabilityRequest) ToServiceRequest(userID uuid.UUID) *models.CreateWindowRequest {
	return &models.CreateWindowRequest{
		UserID:      userID,
		DayOfWeek:   *r.DayOfWeek,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		IsRecurring: r.IsRecurring,
	}
}
