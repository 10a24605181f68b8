package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/booking"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/mailer"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
)

const (
	conflictReasonLocked = "locked"
	conflictReasonTaken  = "taken"
	emailResultPublished = "published"
	emailResultFailed    = "failed"
	defaultLockTTL       = 10 * time.Second
	notificationTimeout  = 10 * time.Second
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	serviceRepo      ServiceRepository
	availabilityRepo AvailabilityRepository
	userRepo         UserRepository
	txManager        TransactionManager
	locker           Locker
	mailer           Mailer
	metrics          Metrics
	lockTTL          time.Duration
	location         *time.Location
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	availabilityRepo AvailabilityRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	locker Locker,
	mailer Mailer,
	metrics Metrics,
	lockTTL time.Duration,
	location *time.Location,
	logger Logger,
) *UseCase {
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		bookingRepo:      bookingRepo,
		serviceRepo:      serviceRepo,
		availabilityRepo: availabilityRepo,
		userRepo:         userRepo,
		txManager:        txManager,
		locker:           locker,
		mailer:           mailer,
		metrics:          metrics,
		lockTTL:          lockTTL,
		location:         location,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Слот проверяется повторно внутри сериализуемой транзакции под блокировкой провайдера на день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	day := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)

	uc.logger.Info("CreateBooking: customer=%s, service=%s, date=%s, time=%s",
		req.CustomerID, req.ServiceID, day.Format(domain.DateFormat), req.StartTime)

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Проверяем услугу и провайдера
	if err := validateService(service, req.ProviderID); err != nil {
		uc.logger.Warn("CreateBooking: service id=%s rejected: %v", service.ID, err)
		return nil, err
	}

	// 4. Интервал бронирования
	start := req.StartTime.On(day)
	end := start.Add(service.Duration())

	if err := validateStart(start, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 5. Блокировка провайдера на день
	key := lockKey(service.ProviderID, day)
	token, acquired, err := uc.locker.Lock(ctx, key, uc.lockTTL)
	switch {
	case err != nil:
		// Redis недоступен: продолжаем, гонку закроют транзакция и constraint
		uc.logger.Warn("CreateBooking: failed to acquire lock %s, continuing without it: %v", key, err)
	case !acquired:
		uc.logger.Warn("CreateBooking: lock %s is held by another request", key)
		uc.metrics.IncBookingConflict(conflictReasonLocked)
		return nil, ErrSlotLocked
	default:
		defer func() {
			if err := uc.locker.Unlock(context.WithoutCancel(ctx), key, token); err != nil {
				uc.logger.Warn("CreateBooking: failed to release lock %s: %v", key, err)
			}
		}()
	}

	var result *domain.Booking

	// 6. Проверка слота и запись в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Окна провайдера на день недели
		weekday := int(day.Weekday())
		windows, err := uc.availabilityRepo.ListByProvider(txCtx, service.ProviderID, &weekday)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get availability for provider=%s: %v", service.ProviderID, err)
			return fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
		}

		// 6.2. Активные бронирования провайдера на день с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.List(txCtx, domain.BookingsFilter{
			ProviderID: &service.ProviderID,
			Overlaps:   &domain.TimeRange{Start: day, End: day.AddDate(0, 0, 1)},
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to get bookings for provider=%s: %v", service.ProviderID, err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.3. Запрошенный интервал должен быть одним из свободных слотов
		slots := domain.ResolveSlots(*service, derefWindows(windows), bookings, day)
		if !domain.ContainsSlot(slots, start, end) {
			uc.logger.Warn("CreateBooking: slot %s-%s is not available for provider=%s (free slots: %d)",
				start.Format(domain.TimeFormat), end.Format(domain.TimeFormat), service.ProviderID, len(slots))
			return ErrSlotNotAvailable
		}

		// 6.4. Создаем бронирование с денормализацией данных услуги
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			CustomerID:   req.CustomerID,
			ProviderID:   service.ProviderID,
			ServiceID:    service.ID,
			StartTime:    start,
			EndTime:      end,
			Status:       domain.StatusPending,
			Notes:        req.Notes,
			ServiceName:  service.Name,
			ServicePrice: service.Price,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateBooking: slot taken concurrently: %v", err)
				return ErrSlotNotAvailable
			}
			if errors.Is(err, bookingRepo.ErrReferenceNotFound) {
				return fmt.Errorf("%w: customer or service does not exist", ErrInvalidInput)
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateBooking: serialization conflict: %v", err)
			err = ErrSlotNotAvailable
		}
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.IncBookingConflict(conflictReasonTaken)
			return nil, err
		}
		if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.metrics.IncBookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	// 7. Уведомления, ошибки не влияют на результат
	uc.notify(ctx, result)

	return toResponse(result), nil
}

// notify отправляет письма клиенту и провайдеру
func (uc *UseCase) notify(ctx context.Context, b *domain.Booking) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notificationTimeout)
	defer cancel()

	customer, err := uc.userRepo.GetByID(ctx, b.CustomerID)
	if err != nil {
		uc.logger.Warn("CreateBooking: skip emails for booking id=%s, customer lookup failed: %v", b.ID, err)
		return
	}
	provider, err := uc.userRepo.GetByID(ctx, b.ProviderID)
	if err != nil {
		uc.logger.Warn("CreateBooking: skip emails for booking id=%s, provider lookup failed: %v", b.ID, err)
		return
	}

	email := mailer.BookingEmail{
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		ProviderName:  provider.Name,
		ProviderEmail: provider.Email,
		ServiceName:   b.ServiceName,
		Price:         b.ServicePrice,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Notes:         b.Notes,
	}

	uc.trackEmail(b, "confirmation", uc.mailer.SendBookingConfirmation(ctx, email))
	uc.trackEmail(b, "provider notification", uc.mailer.SendProviderNotification(ctx, email))
}

func (uc *UseCase) trackEmail(b *domain.Booking, kind string, err error) {
	if err != nil {
		uc.metrics.IncEmailPublished(emailResultFailed)
		uc.logger.Warn("CreateBooking: failed to send %s for booking id=%s: %v", kind, b.ID, err)
		return
	}
	uc.metrics.IncEmailPublished(emailResultPublished)
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:           b.ID,
		CustomerID:   b.CustomerID,
		ProviderID:   b.ProviderID,
		ServiceID:    b.ServiceID,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       string(b.Status),
		ServiceName:  b.ServiceName,
		ServicePrice: b.ServicePrice,
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
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
