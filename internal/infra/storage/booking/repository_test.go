package booking

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
)

func newRepo(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	wrapped := dbmetrics.Wrap(db, nil, "test")
	return NewRepository(wrapped), wrapped, mock
}

func bookingRow(b *domain.Booking) *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow(
		b.ID.String(),
		b.CustomerID.String(),
		b.ProviderID.String(),
		b.ServiceID.String(),
		b.StartTime,
		b.EndTime,
		string(b.Status),
		nil,
		b.ServiceName,
		b.ServicePrice.String(),
		nil,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func sampleBooking() *domain.Booking {
	start := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		ProviderID:   uuid.New(),
		ServiceID:    uuid.New(),
		StartTime:    start,
		EndTime:      start.Add(time.Hour),
		Status:       domain.StatusPending,
		ServiceName:  "Haircut",
		ServicePrice: decimal.RequireFromString("25.50"),
		CreatedAt:    start.Add(-time.Hour),
		UpdatedAt:    start.Add(-time.Hour),
	}
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newRepo(t)
	b := sampleBooking()
	b.ID = uuid.Nil
	created := time.Date(2024, time.January, 10, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings (id,customer_id,provider_id,service_id,start_time,end_time,status,notes,service_name,service_price) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING created_at, updated_at")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, created))

	got, err := repo.Create(context.Background(), b)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, created, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExclusionViolation(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23P01", Constraint: "bookings_no_overlap"})

	_, err := repo.Create(context.Background(), sampleBooking())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := newRepo(t)
	b := sampleBooking()

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs(b.ID.String()).
		WillReturnRows(bookingRow(b))

	got, err := repo.GetByID(context.Background(), b.ID)

	require.NoError(t, err)
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.True(t, b.ServicePrice.Equal(got.ServicePrice))
	assert.Nil(t, got.Notes)
	assert.Nil(t, got.CancelledAt)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("FROM bookings").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_List_OverlapsLocksInsideTransaction(t *testing.T) {
	repo, db, mock := newRepo(t)
	b := sampleBooking()
	day := domain.TimeRange{
		Start: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.January, 16, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE provider_id = $1 AND start_time < $2 AND end_time > $3 AND status <> $4 ORDER BY start_time ASC FOR UPDATE")).
		WillReturnRows(bookingRow(b))
	mock.ExpectCommit()

	var got []*domain.Booking
	err := txmanager.NewTransactionManager(db).DoSerializable(context.Background(), func(ctx context.Context) error {
		var err error
		got, err = repo.List(ctx, domain.BookingsFilter{ProviderID: &b.ProviderID, Overlaps: &day})
		return err
	})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, b.ID, got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_ParticipantWithoutLock(t *testing.T) {
	repo, _, mock := newRepo(t)
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE (customer_id = $1 OR provider_id = $2) ORDER BY start_time ASC")).
		WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.List(context.Background(), domain.BookingsFilter{ParticipantID: &userID, IncludeInactive: true})

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_Cancel(t *testing.T) {
	repo, _, mock := newRepo(t)
	b := sampleBooking()
	b.Status = domain.StatusCancelled

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings SET status = $1, updated_at = NOW(), cancelled_at = NOW() WHERE id = $2 RETURNING")).
		WillReturnRows(bookingRow(b))

	got, err := repo.UpdateStatus(context.Background(), b.ID, domain.StatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("UPDATE bookings").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.UpdateStatus(context.Background(), uuid.New(), domain.StatusConfirmed)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
