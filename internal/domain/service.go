package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service is a bookable offering with a fixed duration and price
type Service struct {
	ID              uuid.UUID
	ProviderID      uuid.UUID
	Name            string
	Description     *string
	DurationMinutes int
	Price           decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Заполняется только в публичном списке
	ProviderName string
}

// Duration длительность услуги
func (s *Service) Duration() time.Duration {
	return time.Duration(s.DurationMinutes) * time.Minute
}

// IsOwnedBy true, если услуга принадлежит провайдеру
func (s *Service) IsOwnedBy(providerID uuid.UUID) bool {
	return s.ProviderID == providerID
}
