package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
)

// UseCase use case для получения свободных слотов услуги на дату
type UseCase struct {
	serviceRepo      ServiceRepository
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	metrics          Metrics
	location         *time.Location
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс, в котором интерпретируются окна доступности
func NewUseCase(
	serviceRepo ServiceRepository,
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		serviceRepo:      serviceRepo,
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		metrics:          metrics,
		location:         location,
		logger:           logger,
	}
}

// Execute возвращает свободные слоты услуги на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	day := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)

	uc.logger.Info("GetAvailableSlots: service=%s, date=%s", req.ServiceID, day.Format(domain.DateFormat))

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if service.DurationMinutes <= 0 {
		uc.logger.Warn("GetAvailableSlots: service id=%s has non-positive duration %d", service.ID, service.DurationMinutes)
		return nil, fmt.Errorf("%w: service duration must be positive", ErrInvalidInput)
	}

	// 3. Окна провайдера на день недели
	weekday := int(day.Weekday())
	windows, err := uc.availabilityRepo.ListByProvider(ctx, service.ProviderID, &weekday)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get availability for provider=%s: %v", service.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 4. Активные бронирования провайдера, пересекающие день
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		ProviderID: &service.ProviderID,
		Overlaps:   &domain.TimeRange{Start: day, End: day.AddDate(0, 0, 1)},
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for provider=%s: %v", service.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Расчет слотов
	slots := domain.ResolveSlots(*service, derefWindows(windows), bookings, day)
	uc.metrics.ObserveSlotsResolved(len(slots))

	uc.logger.Info("GetAvailableSlots: service=%s, date=%s, windows=%d, bookings=%d, slots=%d",
		service.ID, day.Format(domain.DateFormat), len(windows), len(bookings), len(slots))

	return &Response{
		ServiceID: service.ID,
		Date:      day,
		Slots:     slots,
	}, nil
}

func derefWindows(windows []*domain.AvailabilityWindow) []domain.AvailabilityWindow {
	out := make([]domain.AvailabilityWindow, 0, len(windows))
	for _, w := range windows {
		if w != nil {
			out = append(out, *w)
		}
	}
	return out
}
