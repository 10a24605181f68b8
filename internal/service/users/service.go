package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/SMC-AppointmentService/internal/service/users/models"
)

const minPasswordLength = 8

var validate = validator.New()

// Service сервис регистрации и профиля пользователей
type Service struct {
	userRepo UserRepository
	hasher   PasswordHasher
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(
	userRepo UserRepository,
	hasher PasswordHasher,
	logger Logger,
) *Service {
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Register регистрирует пользователя
// Роль по умолчанию customer, пароль хранится только в виде хеша
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	s.logger.Info("Register: registering user email=%s", req.Email)

	// 1. Валидируем входные данные
	role := domain.RoleCustomer
	if req.Role != nil && *req.Role != "" {
		parsed, ok := domain.ParseRole(strings.ToLower(*req.Role))
		if !ok {
			s.logger.Warn("Register: invalid role=%s", *req.Role)
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *req.Role)
		}
		role = parsed
	}

	user := &domain.User{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Role:  role,
	}
	if err := validateUser(user); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	// 2. Хешируем пароль
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}
	user.PasswordHash = hash

	// 3. Сохраняем пользователя
	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email=%s already registered", user.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered user id=%s, role=%s", created.ID, created.Role)
	return models.FromDomainUser(created), nil
}

// UpdateProfile обновляет имя, email, телефон и адрес пользователя
func (s *Service) UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest) (*models.UserResponse, error) {
	s.logger.Info("UpdateProfile: updating profile of user=%s", req.UserID)

	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("UpdateProfile: user=%s not found", req.UserID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("UpdateProfile: failed to get user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}

	req.ApplyTo(user)
	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.TrimSpace(user.Email)
	if err := validateUser(user); err != nil {
		s.logger.Warn("UpdateProfile: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.userRepo.UpdateProfile(ctx, user)
	if err != nil {
		switch {
		case errors.Is(err, userRepo.ErrEmailTaken):
			s.logger.Warn("UpdateProfile: email=%s already registered", user.Email)
			return nil, ErrEmailTaken
		case errors.Is(err, userRepo.ErrUserNotFound):
			return nil, ErrUserNotFound
		}
		s.logger.Error("UpdateProfile: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: UpdateProfile - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateProfile: successfully updated user=%s", req.UserID)
	return models.FromDomainUser(updated), nil
}

func validateUser(u *domain.User) error {
	if u.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(u.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if err := validate.Var(u.Email, "required,email"); err != nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	return nil
}
