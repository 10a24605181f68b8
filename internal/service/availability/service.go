package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/availability"
	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Service сервис для управления окнами доступности провайдера
type Service struct {
	availabilityRepo AvailabilityRepository
	userRepo         UserRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса окон доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// List возвращает окна провайдера, упорядоченные по дню недели и времени начала
func (s *Service) List(ctx context.Context, userID uuid.UUID) (*models.WindowListResponse, error) {
	if err := s.requireProvider(ctx, "List", userID); err != nil {
		return nil, err
	}

	windows, err := s.availabilityRepo.ListByProvider(ctx, userID, nil)
	if err != nil {
		s.logger.Error("List: repository error for provider=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d windows for provider=%s", len(windows), userID)
	return models.FromDomainWindowList(windows), nil
}

// Create добавляет окно доступности
// Пересекающиеся окна допускаются и не объединяются
func (s *Service) Create(ctx context.Context, req *models.CreateWindowRequest) (*models.WindowResponse, error) {
	s.logger.Info("Create: creating window day=%d %s-%s for provider=%s",
		req.DayOfWeek, req.StartTime, req.EndTime, req.UserID)

	// 1. Валидируем входные данные
	window, err := toDomainWindow(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем роль
	if err := s.requireProvider(ctx, "Create", req.UserID); err != nil {
		return nil, err
	}

	// 3. Сохраняем окно
	created, err := s.availabilityRepo.Create(ctx, window)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created window id=%s", created.ID)
	return models.FromDomainWindow(created), nil
}

// Delete удаляет окно доступности
// Доступно только провайдеру-владельцу
func (s *Service) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	s.logger.Info("Delete: deleting window id=%s by user=%s", id, userID)

	if err := s.requireProvider(ctx, "Delete", userID); err != nil {
		return err
	}

	window, err := s.availabilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			s.logger.Warn("Delete: window id=%s not found", id)
			return ErrWindowNotFound
		}
		s.logger.Error("Delete: repository error for window id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if window.ProviderID != userID {
		s.logger.Warn("Delete: user=%s is not the owner of window id=%s", userID, id)
		return ErrAccessDenied
	}

	if err := s.availabilityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, availabilityRepo.ErrWindowNotFound) {
			return ErrWindowNotFound
		}
		s.logger.Error("Delete: repository error for window id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted window id=%s", id)
	return nil
}

// requireProvider проверяет, что пользователь существует и имеет роль provider
func (s *Service) requireProvider(ctx context.Context, op string, userID uuid.UUID) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user=%s not found", op, userID)
			return ErrAccessDenied
		}
		s.logger.Error("%s: failed to get user=%s: %v", op, userID, err)
		return fmt.Errorf("%w: %s - failed to get user: %v", ErrInternal, op, err)
	}

	if !user.IsProvider() {
		s.logger.Warn("%s: user=%s is not a provider", op, userID)
		return ErrAccessDenied
	}

	return nil
}

func toDomainWindow(req *models.CreateWindowRequest) (*domain.AvailabilityWindow, error) {
	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	window := &domain.AvailabilityWindow{
		ProviderID:  req.UserID,
		DayOfWeek:   req.DayOfWeek,
		StartTime:   start,
		EndTime:     end,
		IsRecurring: true,
	}
	if req.IsRecurring != nil {
		window.IsRecurring = *req.IsRecurring
	}

	if err := window.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return window, nil
}
