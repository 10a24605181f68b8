package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxServiceDurationMinutes = 24 * 60
	MaxNameLength             = 255
	MaxNotesLength            = 1000

	DefaultAnalyticsDays = 30
	MaxAnalyticsDays     = 365
)
