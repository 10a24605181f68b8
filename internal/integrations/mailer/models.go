package mailer

import (
	"time"

	"github.com/shopspring/decimal"
)

// EmailPayload сообщение для внешнего mail-воркера
type EmailPayload struct {
	Subject  string   `json:"subject"`
	From     string   `json:"from"`
	To       []string `json:"to"`
	HTMLCode string   `json:"html_code"`
	Encoded  bool     `json:"encoded"`
}

// BookingEmail данные бронирования для писем клиенту и провайдеру
type BookingEmail struct {
	CustomerName  string
	CustomerEmail string
	ProviderName  string
	ProviderEmail string
	ServiceName   string
	Price         decimal.Decimal
	StartTime     time.Time
	EndTime       time.Time
	Notes         *string
}
