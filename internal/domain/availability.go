package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

var (
	// ErrInvalidDayOfWeek день недели вне диапазона 0..6
	ErrInvalidDayOfWeek = errors.New("domain: day of week must be in range 0..6")

	// ErrInvalidWindow окно с некорректным временем или start >= end
	ErrInvalidWindow = errors.New("domain: availability window start must be before end")
)

// AvailabilityWindow recurring weekly block during which a provider accepts bookings
// DayOfWeek: 0 = Sunday ... 6 = Saturday (совпадает с time.Weekday)
type AvailabilityWindow struct {
	ID          uuid.UUID
	ProviderID  uuid.UUID
	DayOfWeek   int
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsRecurring bool
	CreatedAt   time.Time
}

// Validate проверяет день недели и порядок времени
func (w *AvailabilityWindow) Validate() error {
	if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
		return fmt.Errorf("%w: got %d", ErrInvalidDayOfWeek, w.DayOfWeek)
	}
	if err := w.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidWindow, err)
	}
	if err := w.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: endTime: %v", ErrInvalidWindow, err)
	}
	if !w.StartTime.IsBefore(w.EndTime) {
		return fmt.Errorf("%w: %s-%s", ErrInvalidWindow, w.StartTime, w.EndTime)
	}
	return nil
}

// AppliesTo true, если окно относится к дню недели даты
func (w *AvailabilityWindow) AppliesTo(date time.Time) bool {
	return int(date.Weekday()) == w.DayOfWeek
}
