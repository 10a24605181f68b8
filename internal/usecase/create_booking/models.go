package create_booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID uuid.UUID        // ID клиента (из заголовка X-User-ID)
	ServiceID  uuid.UUID        // ID услуги
	ProviderID *uuid.UUID       // ID провайдера (опционально, должен совпадать с провайдером услуги)
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время начала (например, "10:00")
	Notes      *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	ProviderID uuid.UUID
	ServiceID  uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
	Status     string

	// Денормализованные данные
	ServiceName  string
	ServicePrice decimal.Decimal
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
