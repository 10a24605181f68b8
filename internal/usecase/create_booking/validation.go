package create_booking

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID == uuid.Nil {
		return fmt.Errorf("%w: customerId is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateService проверяет услугу и соответствие провайдера
func validateService(service *domain.Service, providerID *uuid.UUID) error {
	if service.DurationMinutes <= 0 {
		return fmt.Errorf("%w: service duration must be positive", ErrInvalidInput)
	}

	if providerID != nil && *providerID != service.ProviderID {
		return ErrProviderMismatch
	}

	return nil
}

// validateStart проверяет, что начало не в прошлом
func validateStart(start, now time.Time) error {
	if start.Before(now) {
		return fmt.Errorf("%w: %s", ErrStartInPast, start.Format(time.RFC3339))
	}
	return nil
}

// lockKey ключ блокировки провайдера на день
func lockKey(providerID uuid.UUID, day time.Time) string {
	return fmt.Sprintf("booking:%s:%s", providerID, day.Format(domain.DateFormat))
}
