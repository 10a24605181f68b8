package availability

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/availability"
	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/SMC-AppointmentService/internal/service/availability/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeWindows struct{ windows map[uuid.UUID]*domain.AvailabilityWindow }

func (f *fakeWindows) Create(_ context.Context, w *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error) {
	w.ID = uuid.New()
	f.windows[w.ID] = w
	return w, nil
}

func (f *fakeWindows) GetByID(_ context.Context, id uuid.UUID) (*domain.AvailabilityWindow, error) {
	w, ok := f.windows[id]
	if !ok {
		return nil, availabilityRepo.ErrWindowNotFound
	}
	return w, nil
}

func (f *fakeWindows) ListByProvider(_ context.Context, providerID uuid.UUID, _ *int) ([]*domain.AvailabilityWindow, error) {
	out := make([]*domain.AvailabilityWindow, 0)
	for _, w := range f.windows {
		if w.ProviderID == providerID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (f *fakeWindows) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.windows[id]; !ok {
		return availabilityRepo.ErrWindowNotFound
	}
	delete(f.windows, id)
	return nil
}

type fakeUsers struct{ users map[uuid.UUID]*domain.User }

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type fixture struct {
	svc      *Service
	repo     *fakeWindows
	provider uuid.UUID
	other    uuid.UUID
	customer uuid.UUID
	window   *domain.AvailabilityWindow
}

func newFixture() *fixture {
	provider, other, customer := uuid.New(), uuid.New(), uuid.New()
	window := &domain.AvailabilityWindow{
		ID:          uuid.New(),
		ProviderID:  provider,
		DayOfWeek:   1,
		StartTime:   types.MustTimeString("09:00"),
		EndTime:     types.MustTimeString("17:00"),
		IsRecurring: true,
	}
	repo := &fakeWindows{windows: map[uuid.UUID]*domain.AvailabilityWindow{window.ID: window}}
	users := &fakeUsers{users: map[uuid.UUID]*domain.User{
		provider: {ID: provider, Role: domain.RoleProvider},
		other:    {ID: other, Role: domain.RoleProvider},
		customer: {ID: customer, Role: domain.RoleCustomer},
	}}
	return &fixture{
		svc:      NewService(repo, users, nopLogger{}),
		repo:     repo,
		provider: provider,
		other:    other,
		customer: customer,
		window:   window,
	}
}

func TestService_List(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.List(context.Background(), f.provider)
	require.NoError(t, err)
	require.Len(t, resp.Windows, 1)
	assert.Equal(t, "09:00", resp.Windows[0].StartTime)

	_, err = f.svc.List(context.Background(), f.customer)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name    string
		req     func(f *fixture) *models.CreateWindowRequest
		wantErr error
	}{
		{
			name: "valid recurring by default",
			req: func(f *fixture) *models.CreateWindowRequest {
				return &models.CreateWindowRequest{UserID: f.provider, DayOfWeek: 2, StartTime: "10:00", EndTime: "12:00"}
			},
		},
		{
			name: "overlapping window is allowed",
			req: func(f *fixture) *models.CreateWindowRequest {
				return &models.CreateWindowRequest{UserID: f.provider, DayOfWeek: 1, StartTime: "16:00", EndTime: "18:00"}
			},
		},
		{
			name: "day out of range",
			req: func(f *fixture) *models.CreateWindowRequest {
				return &models.CreateWindowRequest{UserID: f.provider, DayOfWeek: 7, StartTime: "10:00", EndTime: "12:00"}
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "start after end",
			req: func(f *fixture) *models.CreateWindowRequest {
				return &models.CreateWindowRequest{UserID: f.provider, DayOfWeek: 2, StartTime: "12:00", EndTime: "10:00"}
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "bad time format",
			req: func(f *fixture) *models.CreateWindowRequest {
				return &models.CreateWindowRequest{UserID: f.provider, DayOfWeek: 2, StartTime: "9am", EndTime: "10:00"}
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "customer",
			req: func(f *fixture) *models.CreateWindowRequest {
				return &models.CreateWindowRequest{UserID: f.customer, DayOfWeek: 2, StartTime: "10:00", EndTime: "12:00"}
			},
			wantErr: ErrAccessDenied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			resp, err := f.svc.Create(context.Background(), tt.req(f))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, f.repo.windows, 1)
				return
			}
			require.NoError(t, err)
			assert.True(t, resp.IsRecurring)
			assert.Len(t, f.repo.windows, 2)
		})
	}
}

func TestService_Create_NonRecurring(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Create(context.Background(), &models.CreateWindowRequest{
		UserID: f.provider, DayOfWeek: 5, StartTime: "08:30", EndTime: "09:30", IsRecurring: ptr.Ptr(false),
	})

	require.NoError(t, err)
	assert.False(t, resp.IsRecurring)
}

func TestService_Delete(t *testing.T) {
	f := newFixture()

	err := f.svc.Delete(context.Background(), f.window.ID, f.other)
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = f.svc.Delete(context.Background(), uuid.New(), f.provider)
	assert.ErrorIs(t, err, ErrWindowNotFound)

	err = f.svc.Delete(context.Background(), f.window.ID, f.provider)
	require.NoError(t, err)
	assert.Empty(t, f.repo.windows)
}
