package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// AllStatuses все статусы в порядке жизненного цикла
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// ParseBookingStatus проверяет, что строка является известным статусом
func ParseBookingStatus(s string) (BookingStatus, bool) {
	for _, status := range AllStatuses {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}

// Booking represents a customer's reservation of a provider's time
// The interval [StartTime, EndTime) is half-open
type Booking struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	ProviderID uuid.UUID
	ServiceID  uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
	Status     BookingStatus
	Notes      *string

	// Denormalized data for history
	ServiceName  string
	ServicePrice decimal.Decimal

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the booking still occupies provider time
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo проверяет переход статуса провайдером
// pending -> confirmed|cancelled, confirmed -> completed|cancelled
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// Overlaps half-open overlap test against [start, end)
func (b *Booking) Overlaps(start, end time.Time) bool {
	return start.Before(b.EndTime) && end.After(b.StartTime)
}

// IsParticipant true, если пользователь клиент или провайдер бронирования
func (b *Booking) IsParticipant(userID uuid.UUID) bool {
	return b.CustomerID == userID || b.ProviderID == userID
}

// TimeRange полуоткрытый интервал [Start, End)
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	ProviderID      *uuid.UUID     // Бронирования провайдера
	CustomerID      *uuid.UUID     // Бронирования клиента
	ParticipantID   *uuid.UUID     // Клиент ИЛИ провайдер
	StartsIn        *TimeRange     // startTime в [Start, End)
	Overlaps        *TimeRange     // Пересечение с [Start, End)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}
