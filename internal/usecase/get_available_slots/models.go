package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	ServiceID uuid.UUID // ID услуги
	Date      time.Time // Календарная дата, используются только год, месяц и день
}

// Response модель ответа со списком слотов
type Response struct {
	ServiceID uuid.UUID
	Date      time.Time     // Начало дня в часовом поясе сервиса
	Slots     []domain.Slot // Слоты в порядке окон доступности
}
