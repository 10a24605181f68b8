package analytics

import "errors"

var (
	// ErrAccessDenied возвращается, когда пользователь не провайдер
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректном периоде
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
