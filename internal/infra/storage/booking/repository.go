package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/pgerrors"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

const table = "bookings"

var columns = []string{
	"id",
	"customer_id",
	"provider_id",
	"service_id",
	"start_time",
	"end_time",
	"status",
	"notes",
	"service_name",
	"service_price",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана транзакция, запрос выполняется в ней.
// Пересечение с активным бронированием того же провайдера отсекается
// exclusion constraint и возвращается как ErrSlotNotAvailable
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"customer_id",
			"provider_id",
			"service_id",
			"start_time",
			"end_time",
			"status",
			"notes",
			"service_name",
			"service_price",
		).
		Values(
			booking.ID,
			booking.CustomerID,
			booking.ProviderID,
			booking.ServiceID,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.Notes,
			booking.ServiceName,
			booking.ServicePrice,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		switch {
		case pgerrors.Is(err, pgerrors.ExclusionViolation, pgerrors.SerializationFailure, pgerrors.DeadlockDetected):
			return nil, fmt.Errorf("%w: Create: %v", ErrSlotNotAvailable, err)
		case pgerrors.Is(err, pgerrors.ForeignKeyViolation):
			return nil, fmt.Errorf("%w: Create: %v", ErrReferenceNotFound, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции строка блокируется до смены статуса
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List получает бронирования по фильтру, отсортированные по времени начала
//
// Примеры:
//
// 1. Активные бронирования провайдера, пересекающие день (для расчета слотов):
//    filter := domain.BookingsFilter{ProviderID: &providerID, Overlaps: &domain.TimeRange{Start: dayStart, End: dayEnd}}
//
// 2. Все бронирования пользователя как клиента или провайдера:
//    filter := domain.BookingsFilter{ParticipantID: &userID, IncludeInactive: true}
//
// 3. Бронирования провайдера за период (аналитика):
//    filter := domain.BookingsFilter{ProviderID: &providerID, StartsIn: &period, IncludeInactive: true}
//
// Внутри транзакции выборка по пересечению блокируется FOR UPDATE
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From(table)

	if filter.ProviderID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"provider_id": *filter.ProviderID})
	}
	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.ParticipantID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.Eq{"customer_id": *filter.ParticipantID},
			squirrel.Eq{"provider_id": *filter.ParticipantID},
		})
	}

	if filter.StartsIn != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.GtOrEq{"start_time": filter.StartsIn.Start}).
			Where(squirrel.Lt{"start_time": filter.StartsIn.End})
	}

	// Полуоткрытое пересечение: start < rangeEnd AND end > rangeStart
	if filter.Overlaps != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Lt{"start_time": filter.Overlaps.End}).
			Where(squirrel.Gt{"end_time": filter.Overlaps.Start})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	selectBuilder = selectBuilder.OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.Overlaps != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if pgerrors.Is(err, pgerrors.SerializationFailure, pgerrors.DeadlockDetected) {
			return nil, fmt.Errorf("%w: List: %v", ErrSlotNotAvailable, err)
		}
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// UpdateStatus обновляет статус бронирования
// Для статуса cancelled дополнительно проставляется cancelled_at
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if status == domain.StatusCancelled {
		updateBuilder = updateBuilder.Set("cancelled_at", squirrel.Expr("NOW()"))
	}

	query, args, err := updateBuilder.Suffix("RETURNING " + strings.Join(columns, ", ")).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		if pgerrors.Is(err, pgerrors.ExclusionViolation) {
			return nil, fmt.Errorf("%w: UpdateStatus: %v", ErrSlotNotAvailable, err)
		}
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return booking, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID,
		&b.CustomerID,
		&b.ProviderID,
		&b.ServiceID,
		&b.StartTime,
		&b.EndTime,
		&b.Status,
		&b.Notes,
		&b.ServiceName,
		&b.ServicePrice,
		&b.CancelledAt,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
