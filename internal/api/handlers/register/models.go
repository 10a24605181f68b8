package register

import (
	"github.com/m04kA/SMC-AppointmentService/internal/service/users/models"
)

// RegisterRequest HTTP request model
type RegisterRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    string  `json:"email" validate:"required"`
	Password string  `json:"password" validate:"required"`
	Role     *string `json:"role,omitempty"` // customer | provider
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *RegisterRequest) ToServiceRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     r.Role,
	}
}
