package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrProviderMismatch возвращается, когда providerId не совпадает с провайдером услуги
	ErrProviderMismatch = errors.New("create_booking: provider does not offer this service")

	// ErrStartInPast возвращается при попытке забронировать время в прошлом
	ErrStartInPast = errors.New("create_booking: start time is in the past")

	// ErrSlotNotAvailable возвращается, когда выбранный слот занят или не входит в окна доступности
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrSlotLocked возвращается, когда для провайдера на этот день уже идет создание бронирования
	ErrSlotLocked = errors.New("create_booking: booking for this provider and day is in progress")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
