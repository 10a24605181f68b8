package get_analytics

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/analytics"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidDays   = "некорректный период, days должен быть от 1 до 365"
	msgForbidden     = "аналитика доступна только провайдерам"
)

type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/analytics
// Query params: days (optional, по умолчанию 30)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /analytics - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	daysStr := r.URL.Query().Get("days")
	serviceReq, err := ToServiceRequest(userID, daysStr)
	if err != nil {
		h.logger.Warn("GET /analytics - Invalid days: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDays)
		return
	}

	report, err := h.service.GetReport(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrInvalidInput):
			h.logger.Warn("GET /analytics - Invalid days: user_id=%s, days=%s", userID, daysStr)
			handlers.RespondBadRequest(w, msgInvalidDays)

		case errors.Is(err, analytics.ErrAccessDenied):
			h.logger.Warn("GET /analytics - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /analytics - Failed to build report: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /analytics - Report built successfully: user_id=%s, days=%d, total=%d",
		userID, report.Days, report.TotalBookings)
	handlers.RespondJSON(w, http.StatusOK, report)
}
