package update_profile

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/service/users/models"
)

// UpdateProfileRequest HTTP request model
type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=500"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateProfileRequest) ToServiceRequest(userID uuid.UUID) *models.UpdateProfileRequest {
	return &models.UpdateProfileRequest{
		UserID:  userID,
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
	}
}
