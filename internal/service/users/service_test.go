package users

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	userRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/user"
	"github.com/m04kA/SMC-AppointmentService/internal/service/users/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUsers struct{ users map[uuid.UUID]*domain.User }

func (f *fakeUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range f.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return nil, userRepo.ErrEmailTaken
		}
	}
	u.ID = uuid.New()
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, u *domain.User) (*domain.User, error) {
	for id, existing := range f.users {
		if id != u.ID && strings.EqualFold(existing.Email, u.Email) {
			return nil, userRepo.ErrEmailTaken
		}
	}
	f.users[u.ID] = u
	return u, nil
}

func newService() (*Service, *fakeUsers) {
	repo := &fakeUsers{users: map[uuid.UUID]*domain.User{}}
	return NewService(repo, NewBcryptHasher(bcrypt.MinCost), nopLogger{}), repo
}

func TestService_Register(t *testing.T) {
	svc, repo := newService()

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "customer", resp.Role)

	stored := repo.users[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")))
}

func TestService_Register_Provider(t *testing.T) {
	svc, _ := newService()

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Dr. Smith",
		Email:    "smith@example.com",
		Password: "s3cret-pass",
		Role:     ptr.Ptr("PROVIDER"),
	})

	require.NoError(t, err)
	assert.Equal(t, "provider", resp.Role)
}

func TestService_Register_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.RegisterRequest
		wantErr error
	}{
		{name: "duplicate email", req: &models.RegisterRequest{Name: "Bob", Email: "taken@example.com", Password: "long-enough"}, wantErr: ErrEmailTaken},
		{name: "short password", req: &models.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "short"}, wantErr: ErrInvalidInput},
		{name: "bad email", req: &models.RegisterRequest{Name: "Bob", Email: "not-an-email", Password: "long-enough"}, wantErr: ErrInvalidInput},
		{name: "missing name", req: &models.RegisterRequest{Email: "bob@example.com", Password: "long-enough"}, wantErr: ErrInvalidInput},
		{name: "unknown role", req: &models.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "long-enough", Role: ptr.Ptr("admin")}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newService()
			id := uuid.New()
			repo.users[id] = &domain.User{ID: id, Name: "Taken", Email: "taken@example.com", Role: domain.RoleCustomer}

			_, err := svc.Register(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_UpdateProfile(t *testing.T) {
	svc, repo := newService()
	id, otherID := uuid.New(), uuid.New()
	repo.users[id] = &domain.User{ID: id, Name: "Alice", Email: "alice@example.com", Role: domain.RoleCustomer}
	repo.users[otherID] = &domain.User{ID: otherID, Name: "Bob", Email: "bob@example.com", Role: domain.RoleCustomer}

	resp, err := svc.UpdateProfile(context.Background(), &models.UpdateProfileRequest{
		UserID: id,
		Phone:  ptr.Ptr("+1 555 0100"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.Name)
	require.NotNil(t, resp.Phone)
	assert.Equal(t, "+1 555 0100", *resp.Phone)

	_, err = svc.UpdateProfile(context.Background(), &models.UpdateProfileRequest{UserID: id, Email: ptr.Ptr("bob@example.com")})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = svc.UpdateProfile(context.Background(), &models.UpdateProfileRequest{UserID: uuid.New(), Name: ptr.Ptr("Ghost")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
