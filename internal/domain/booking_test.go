package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_Overlaps(t *testing.T) {
	b := booking("10:00", "11:00", StatusConfirmed)

	assert.True(t, b.Overlaps(at("10:30"), at("11:30")))
	assert.True(t, b.Overlaps(at("09:00"), at("12:00")))
	assert.False(t, b.Overlaps(at("09:00"), at("10:00")))
	assert.False(t, b.Overlaps(at("11:00"), at("12:00")))
}

func TestBooking_IsParticipant(t *testing.T) {
	customer, provider := uuid.New(), uuid.New()
	b := &Booking{CustomerID: customer, ProviderID: provider}

	assert.True(t, b.IsParticipant(customer))
	assert.True(t, b.IsParticipant(provider))
	assert.False(t, b.IsParticipant(uuid.New()))
}

func TestParseBookingStatus(t *testing.T) {
	status, ok := ParseBookingStatus("completed")
	assert.True(t, ok)
	assert.Equal(t, StatusCompleted, status)

	_, ok = ParseBookingStatus("CONFIRMED")
	assert.False(t, ok)
}
