package update_service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

// UpdateServiceRequest HTTP request model
// Все поля опциональны, обновляются только переданные
type UpdateServiceRequest struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string          `json:"description,omitempty"`
	Duration    *int             `json:"duration,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateServiceRequest) ToServiceRequest(userID uuid.UUID) *models.UpdateServiceRequest {
	return &models.UpdateServiceRequest{
		UserID:          userID,
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.Duration,
		Price:           r.Price,
	}
}
