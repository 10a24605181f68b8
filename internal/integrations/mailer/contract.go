package mailer

import "context"

// Publisher транспорт писем
type Publisher interface {
	Publish(ctx context.Context, payload EmailPayload) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
