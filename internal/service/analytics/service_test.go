package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/SMC-AppointmentService/internal/service/analytics/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeBookings struct {
	bookings  []*domain.Booking
	gotFilter domain.BookingsFilter
}

func (f *fakeBookings) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.gotFilter = filter
	return f.bookings, nil
}

type fakeUsers struct{ users map[uuid.UUID]*domain.User }

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func newService(t *testing.T) (*Service, *fakeBookings, uuid.UUID, uuid.UUID) {
	t.Helper()
	provider, customer := uuid.New(), uuid.New()
	bookings := &fakeBookings{bookings: []*domain.Booking{bookingOn(0, 9, domain.StatusConfirmed, "15")}}
	users := &fakeUsers{users: map[uuid.UUID]*domain.User{
		provider: {ID: provider, Role: domain.RoleProvider},
		customer: {ID: customer, Role: domain.RoleCustomer},
	}}
	svc := NewService(bookings, users, time.UTC, nopLogger{})
	svc.timeProvider = fixedTime{now: now}
	return svc, bookings, provider, customer
}

func TestService_GetReport_DefaultPeriod(t *testing.T) {
	svc, bookings, provider, _ := newService(t)

	report, err := svc.GetReport(context.Background(), &models.ReportRequest{UserID: provider})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAnalyticsDays, report.Days)
	assert.Len(t, report.BookingsByDay, domain.DefaultAnalyticsDays)
	assert.Equal(t, 1, report.TotalBookings)

	require.NotNil(t, bookings.gotFilter.ProviderID)
	assert.Equal(t, provider, *bookings.gotFilter.ProviderID)
	assert.True(t, bookings.gotFilter.IncludeInactive)
	require.NotNil(t, bookings.gotFilter.StartsIn)
	assert.Equal(t, time.Date(2024, time.February, 9, 0, 0, 0, 0, time.UTC), bookings.gotFilter.StartsIn.Start)
}

func TestService_GetReport_Errors(t *testing.T) {
	svc, _, provider, customer := newService(t)

	tests := []struct {
		name    string
		req     *models.ReportRequest
		wantErr error
	}{
		{name: "customer", req: &models.ReportRequest{UserID: customer}, wantErr: ErrAccessDenied},
		{name: "unknown user", req: &models.ReportRequest{UserID: uuid.New()}, wantErr: ErrAccessDenied},
		{name: "zero days", req: &models.ReportRequest{UserID: provider, Days: ptr.Ptr(0)}, wantErr: ErrInvalidInput},
		{name: "too many days", req: &models.ReportRequest{UserID: provider, Days: ptr.Ptr(366)}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetReport(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
