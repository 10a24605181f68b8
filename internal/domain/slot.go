package domain

import "time"

// Slot bookable interval [StartTime, EndTime) on a concrete date
type Slot struct {
	StartTime time.Time
	EndTime   time.Time
}

// ResolveSlots строит список свободных слотов услуги на дату date
//
// Каждое окно привязывается к календарной дате date (в её часовом поясе) и нарезается
// с шагом, равным длительности услуги. Слот попадает в результат, если целиком
// помещается в окно и не пересекается ни с одним активным бронированием.
// Окна обрабатываются независимо в порядке входа, результат не сортируется и не сливается.
//
// Функция чистая: входные данные не изменяются, на некорректных данных
// (длительность <= 0, окно с start >= end) возвращается пустой список.
func ResolveSlots(service Service, windows []AvailabilityWindow, bookings []*Booking, date time.Time) []Slot {
	slots := make([]Slot, 0)

	step := service.Duration()
	if step <= 0 {
		return slots
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	for _, window := range windows {
		if window.Validate() != nil {
			continue
		}

		windowStart := window.StartTime.On(day)
		windowEnd := window.EndTime.On(day)

		for cur := windowStart; cur.Before(windowEnd); cur = cur.Add(step) {
			end := cur.Add(step)
			// Хвост окна короче длительности услуги отбрасывается
			if end.After(windowEnd) {
				break
			}
			if overlapsAny(cur, end, bookings) {
				continue
			}
			slots = append(slots, Slot{StartTime: cur, EndTime: end})
		}
	}

	return slots
}

// ContainsSlot true, если [start, end) совпадает с одним из слотов
func ContainsSlot(slots []Slot, start, end time.Time) bool {
	for _, s := range slots {
		if s.StartTime.Equal(start) && s.EndTime.Equal(end) {
			return true
		}
	}
	return false
}

// overlapsAny граничные касания (end == bookingStart) пересечением не считаются
func overlapsAny(start, end time.Time, bookings []*Booking) bool {
	for _, b := range bookings {
		if b == nil || !b.IsActive() {
			continue
		}
		if b.Overlaps(start, end) {
			return true
		}
	}
	return false
}
