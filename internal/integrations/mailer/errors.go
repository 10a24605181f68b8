package mailer

import "errors"

var (
	// ErrConnect ошибка подключения к RabbitMQ
	ErrConnect = errors.New("mailer: failed to connect to broker")

	// ErrRender ошибка рендеринга шаблона письма
	ErrRender = errors.New("mailer: failed to render template")

	// ErrPublish ошибка публикации письма в очередь
	ErrPublish = errors.New("mailer: failed to publish message")
)
