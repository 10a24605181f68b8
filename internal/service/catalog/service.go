package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

// Service сервис каталога услуг провайдеров
type Service struct {
	serviceRepo ServiceRepository
	userRepo    UserRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	serviceRepo ServiceRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// List возвращает все услуги с именами провайдеров
// Публичный метод - доступен всем
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx, nil)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// Create создает услугу от имени провайдера
// Доступно только пользователям с ролью provider
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%q by user=%s", req.Name, req.UserID)

	// 1. Валидируем входные данные
	service := req.ToDomainService()
	service.Name = strings.TrimSpace(service.Name)
	if err := validateService(service); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем роль
	if err := s.requireProvider(ctx, "Create", req.UserID); err != nil {
		return nil, err
	}

	// 3. Создаем услугу
	created, err := s.serviceRepo.Create(ctx, service)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%s", created.ID)
	return models.FromDomainService(created), nil
}

// GetByID получает услугу по ID
// Доступно только провайдеру-владельцу
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*models.ServiceResponse, error) {
	s.logger.Info("GetByID: fetching service id=%s for user=%s", id, userID)

	service, err := s.getOwned(ctx, "GetByID", id, userID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainService(service), nil
}

// Update обновляет услугу
// Доступно только провайдеру-владельцу
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%s by user=%s", id, req.UserID)

	service, err := s.getOwned(ctx, "Update", id, req.UserID)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(service)
	service.Name = strings.TrimSpace(service.Name)
	if err := validateService(service); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.serviceRepo.Update(ctx, service)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%s not found during update", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated service id=%s", id)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу
// Доступно только провайдеру-владельцу, услугу с бронированиями удалить нельзя
func (s *Service) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	s.logger.Info("Delete: deleting service id=%s by user=%s", id, userID)

	if _, err := s.getOwned(ctx, "Delete", id, userID); err != nil {
		return err
	}

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, serviceRepo.ErrServiceNotFound):
			s.logger.Warn("Delete: service id=%s not found during delete", id)
			return ErrServiceNotFound
		case errors.Is(err, serviceRepo.ErrServiceInUse):
			s.logger.Warn("Delete: service id=%s is referenced by bookings", id)
			return ErrServiceInUse
		}
		s.logger.Error("Delete: repository error for service id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted service id=%s", id)
	return nil
}

// Вспомогательные методы

// getOwned получает услугу и проверяет, что пользователь её провайдер
func (s *Service) getOwned(ctx context.Context, op string, id uuid.UUID, userID uuid.UUID) (*domain.Service, error) {
	if err := s.requireProvider(ctx, op, userID); err != nil {
		return nil, err
	}

	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("%s: service id=%s not found", op, id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("%s: repository error for service id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if !service.IsOwnedBy(userID) {
		s.logger.Warn("%s: user=%s is not the owner of service id=%s", op, userID, id)
		return nil, ErrAccessDenied
	}

	return service, nil
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

func validateService(s *domain.Service) error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(s.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if s.DurationMinutes <= 0 || s.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between 1 and %d minutes", ErrInvalidInput, domain.MaxServiceDurationMinutes)
	}
	if s.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}
