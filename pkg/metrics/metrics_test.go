package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_DomainCounters(t *testing.T) {
	m := NewWithRegistry("appointments", prometheus.NewRegistry())

	m.IncBookingCreated()
	m.IncBookingCreated()
	m.IncBookingConflict("taken")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.BookingsCreated.WithLabelValues("appointments")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.BookingConflicts.WithLabelValues("appointments", "taken")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.BookingConflicts.WithLabelValues("appointments", "locked")))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBookingCreated()
		m.IncBookingConflict("locked")
		m.ObserveSlotsResolved(3)
		m.IncEmailPublished("ok")
	})
	assert.Empty(t, m.ServiceName())
}
