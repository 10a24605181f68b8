package update_profile

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/users/models"
)

type UserService interface {
	UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
