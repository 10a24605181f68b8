package create_service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

// CreateServiceRequest HTTP request model
type CreateServiceRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description *string         `json:"description,omitempty"`
	Duration    int             `json:"duration" validate:"required,gt=0"` // минуты
	Price       decimal.Decimal `json:"price"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateServiceRequest) ToServiceRequest(userID uuid.UUID) *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		UserID:          userID,
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.Duration,
		Price:           r.Price,
	}
}
