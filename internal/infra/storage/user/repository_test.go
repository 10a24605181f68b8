package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

func TestRepository_Create_NormalizesEmail(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(sqlmock.AnyArg(), "Anna", "anna@example.com", "hash", "customer", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	got, err := repo.Create(context.Background(), &domain.User{
		Name:         "Anna",
		Email:        "  Anna@Example.COM ",
		PasswordHash: "hash",
		Role:         domain.RoleCustomer,
	})

	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", got.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_DuplicateEmail(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO users").WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.User{Email: "a@b.c", Role: domain.RoleCustomer})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newRepo(t)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(id.String(), "Bob", "bob@example.com", "hash", "provider", "+100", nil, now, now))

	got, err := repo.GetByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, domain.RoleProvider, got.Role)
	require.NotNil(t, got.Phone)
	assert.Equal(t, "+100", *got.Phone)
	assert.Nil(t, got.Address)
	assert.True(t, got.IsProvider())
}

func TestRepository_GetByEmail_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByEmail(context.Background(), "Nobody@example.com")

	assert.ErrorIs(t, err, ErrUserNotFound)
}
