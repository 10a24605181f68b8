package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAvailabilityWindow_Validate(t *testing.T) {
	tests := []struct {
		name    string
		window  AvailabilityWindow
		wantErr error
	}{
		{name: "valid", window: window("09:00", "17:00")},
		{name: "start equals end", window: window("09:00", "09:00"), wantErr: ErrInvalidWindow},
		{name: "start after end", window: window("17:00", "09:00"), wantErr: ErrInvalidWindow},
		{name: "bad format", window: AvailabilityWindow{DayOfWeek: 1, StartTime: "9am", EndTime: "10:00"}, wantErr: ErrInvalidWindow},
		{name: "day out of range", window: AvailabilityWindow{DayOfWeek: 7, StartTime: "09:00", EndTime: "10:00"}, wantErr: ErrInvalidDayOfWeek},
		{name: "negative day", window: AvailabilityWindow{DayOfWeek: -1, StartTime: "09:00", EndTime: "10:00"}, wantErr: ErrInvalidDayOfWeek},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.window.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAvailabilityWindow_AppliesTo(t *testing.T) {
	w := AvailabilityWindow{DayOfWeek: 0}

	assert.True(t, w.AppliesTo(time.Date(2024, time.January, 14, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.AppliesTo(monday))
}
