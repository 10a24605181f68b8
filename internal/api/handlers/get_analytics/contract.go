package get_analytics

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/analytics/models"
)

type AnalyticsService interface {
	GetReport(ctx context.Context, req *models.ReportRequest) (*models.Report, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
