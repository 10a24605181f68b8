package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeServices struct {
	services map[uuid.UUID]*domain.Service
	inUse    map[uuid.UUID]bool
}

func (f *fakeServices) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	s.ID = uuid.New()
	f.services[s.ID] = s
	return s, nil
}

func (f *fakeServices) GetByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeServices) List(_ context.Context, _ *uuid.UUID) ([]*domain.Service, error) {
	out := make([]*domain.Service, 0, len(f.services))
	for _, s := range f.services {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeServices) Update(_ context.Context, s *domain.Service) (*domain.Service, error) {
	if _, ok := f.services[s.ID]; !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	f.services[s.ID] = s
	return s, nil
}

func (f *fakeServices) Delete(_ context.Context, id uuid.UUID) error {
	if f.inUse[id] {
		return serviceRepo.ErrServiceInUse
	}
	if _, ok := f.services[id]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	delete(f.services, id)
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
	repo     *fakeServices
	provider uuid.UUID
	other    uuid.UUID
	customer uuid.UUID
	existing *domain.Service
}

func newFixture() *fixture {
	provider, other, customer := uuid.New(), uuid.New(), uuid.New()
	existing := &domain.Service{
		ID:              uuid.New(),
		ProviderID:      provider,
		Name:            "Consultation",
		DurationMinutes: 30,
		Price:           decimal.RequireFromString("40"),
		ProviderName:    "Dr. Smith",
	}
	repo := &fakeServices{
		services: map[uuid.UUID]*domain.Service{existing.ID: existing},
		inUse:    map[uuid.UUID]bool{},
	}
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
		existing: existing,
	}
}

func TestService_List(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, f.provider, resp.Services[0].Provider.ID)
	assert.Equal(t, "Dr. Smith", resp.Services[0].Provider.Name)
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(f *fixture, req *models.CreateServiceRequest)
		wantErr error
	}{
		{name: "valid", modify: func(*fixture, *models.CreateServiceRequest) {}},
		{name: "free service", modify: func(_ *fixture, r *models.CreateServiceRequest) { r.Price = decimal.Zero }},
		{name: "blank name", modify: func(_ *fixture, r *models.CreateServiceRequest) { r.Name = "   " }, wantErr: ErrInvalidInput},
		{name: "zero duration", modify: func(_ *fixture, r *models.CreateServiceRequest) { r.DurationMinutes = 0 }, wantErr: ErrInvalidInput},
		{name: "negative price", modify: func(_ *fixture, r *models.CreateServiceRequest) { r.Price = decimal.NewFromInt(-1) }, wantErr: ErrInvalidInput},
		{name: "customer", modify: func(f *fixture, r *models.CreateServiceRequest) { r.UserID = f.customer }, wantErr: ErrAccessDenied},
		{name: "unknown user", modify: func(_ *fixture, r *models.CreateServiceRequest) { r.UserID = uuid.New() }, wantErr: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := &models.CreateServiceRequest{
				UserID:          f.provider,
				Name:            " Massage ",
				DurationMinutes: 60,
				Price:           decimal.RequireFromString("75.00"),
			}
			tt.modify(f, req)

			resp, err := f.svc.Create(context.Background(), req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, f.repo.services, 1)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Massage", resp.Name)
			assert.Equal(t, f.provider, resp.Provider.ID)
			assert.Len(t, f.repo.services, 2)
		})
	}
}

func TestService_GetByID_OwnerOnly(t *testing.T) {
	f := newFixture()

	_, err := f.svc.GetByID(context.Background(), f.existing.ID, f.provider)
	require.NoError(t, err)

	_, err = f.svc.GetByID(context.Background(), f.existing.ID, f.other)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = f.svc.GetByID(context.Background(), uuid.New(), f.provider)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_Update(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.Update(context.Background(), f.existing.ID, &models.UpdateServiceRequest{
		UserID:          f.provider,
		DurationMinutes: ptr.Ptr(45),
	})

	require.NoError(t, err)
	assert.Equal(t, 45, resp.DurationMinutes)
	assert.Equal(t, "Consultation", resp.Name)

	_, err = f.svc.Update(context.Background(), f.existing.ID, &models.UpdateServiceRequest{
		UserID: f.provider,
		Name:   ptr.Ptr(""),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.Update(context.Background(), f.existing.ID, &models.UpdateServiceRequest{
		UserID: f.other,
		Name:   ptr.Ptr("Stolen"),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Delete(t *testing.T) {
	t.Run("in use", func(t *testing.T) {
		f := newFixture()
		f.repo.inUse[f.existing.ID] = true

		err := f.svc.Delete(context.Background(), f.existing.ID, f.provider)

		assert.ErrorIs(t, err, ErrServiceInUse)
	})

	t.Run("not owner", func(t *testing.T) {
		f := newFixture()

		err := f.svc.Delete(context.Background(), f.existing.ID, f.other)

		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Len(t, f.repo.services, 1)
	})

	t.Run("owner", func(t *testing.T) {
		f := newFixture()

		err := f.svc.Delete(context.Background(), f.existing.ID, f.provider)

		require.NoError(t, err)
		assert.Empty(t, f.repo.services)
	})
}
