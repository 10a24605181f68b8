package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/SMC-AppointmentService/internal/service/analytics/models"
)

// Service сервис аналитики провайдера
type Service struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аналитики
// location - часовой пояс, в котором считаются границы дней
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetReport строит отчет провайдера за последние days дней
func (s *Service) GetReport(ctx context.Context, req *models.ReportRequest) (*models.Report, error) {
	days := domain.DefaultAnalyticsDays
	if req.Days != nil {
		days = *req.Days
	}
	if days < 1 || days > domain.MaxAnalyticsDays {
		s.logger.Warn("GetReport: invalid days=%d for user=%s", days, req.UserID)
		return nil, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, domain.MaxAnalyticsDays)
	}

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetReport: user=%s not found", req.UserID)
			return nil, ErrAccessDenied
		}
		s.logger.Error("GetReport: failed to get user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetReport - failed to get user: %v", ErrInternal, err)
	}
	if !user.IsProvider() {
		s.logger.Warn("GetReport: user=%s is not a provider", req.UserID)
		return nil, ErrAccessDenied
	}

	now := s.timeProvider.Now().In(s.location)
	p := period(now, days)

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		ProviderID:      &req.UserID,
		StartsIn:        &p,
		IncludeInactive: true,
	})
	if err != nil {
		s.logger.Error("GetReport: repository error for provider=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetReport - repository error: %v", ErrInternal, err)
	}

	report := BuildReport(bookings, now, days)

	s.logger.Info("GetReport: provider=%s, days=%d, bookings=%d, revenue=%s",
		req.UserID, days, report.TotalBookings, report.TotalRevenue)
	return report, nil
}
