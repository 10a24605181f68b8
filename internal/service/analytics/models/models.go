package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReportRequest запрос отчета провайдера
type ReportRequest struct {
	UserID uuid.UUID
	Days   *int // по умолчанию 30
}

// DayStats статистика за один день
type DayStats struct {
	Date    string          `json:"date"` // "2024-01-15"
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// Report отчет провайдера за период
type Report struct {
	Days             int             `json:"days"`
	TotalBookings    int             `json:"totalBookings"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	BookingsByStatus map[string]int  `json:"bookingsByStatus"`
	BookingsByDay    []DayStats      `json:"bookingsByDay"`
}
