package get_analytics

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/service/analytics/models"
)

// ToServiceRequest конвертирует query параметры в модель сервиса
// Пустой days означает период по умолчанию
func ToServiceRequest(userID uuid.UUID, daysStr string) (*models.ReportRequest, error) {
	req := &models.ReportRequest{UserID: userID}
	if daysStr == "" {
		return req, nil
	}

	days, err := strconv.Atoi(daysStr)
	if err != nil {
		return nil, err
	}
	req.Days = &days

	return req, nil
}
