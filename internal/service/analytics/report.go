package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/analytics/models"
)

// startOfDay полночь даты t в её часовом поясе
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// period интервал выборки [startOfDay(now - days), startOfDay(now) + 1 день)
func period(now time.Time, days int) domain.TimeRange {
	today := startOfDay(now)
	return domain.TimeRange{
		Start: today.AddDate(0, 0, -days),
		End:   today.AddDate(0, 0, 1),
	}
}

// BuildReport считает отчет по бронированиям провайдера
//
// totalBookings учитывает все бронирования периода, выручка считается
// только по неотмененным. bookingsByDay содержит ровно days записей,
// последняя - сегодняшний день, от старых к новым.
func BuildReport(bookings []*domain.Booking, now time.Time, days int) *models.Report {
	report := &models.Report{
		Days:             days,
		TotalRevenue:     decimal.Zero,
		BookingsByStatus: make(map[string]int, len(domain.AllStatuses)),
		BookingsByDay:    make([]models.DayStats, days),
	}

	for _, status := range domain.AllStatuses {
		report.BookingsByStatus[string(status)] = 0
	}

	today := startOfDay(now)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		date := today.AddDate(0, 0, i-days+1).Format(domain.DateFormat)
		report.BookingsByDay[i] = models.DayStats{Date: date, Revenue: decimal.Zero}
		index[date] = i
	}

	for _, b := range bookings {
		if b == nil {
			continue
		}

		report.TotalBookings++
		report.BookingsByStatus[string(b.Status)]++

		revenue := decimal.Zero
		if b.IsActive() {
			revenue = b.ServicePrice
			report.TotalRevenue = report.TotalRevenue.Add(revenue)
		}

		date := b.StartTime.In(now.Location()).Format(domain.DateFormat)
		if i, ok := index[date]; ok {
			report.BookingsByDay[i].Count++
			report.BookingsByDay[i].Revenue = report.BookingsByDay[i].Revenue.Add(revenue)
		}
	}

	return report
}
