package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/t1mga/FSP-BookingService/internal/domain"
	"github.com/t1mga/FSP-BookingService/pkg/dbmetrics"
	"github.com/t1mga/FSP-BookingService/pkg/psqlbuilder"
	"github.com/t1mga/FSP-BookingService/pkg/types"
)

// Код Postgres exclusion_violation - срабатывание constraint bookings_no_overlap
const pgExclusionViolation = "23P01"

var bookingColumns = []string{
	"id",
	"client_id",
	"professional_id",
	"booking_date",
	"start_time",
	"end_time",
	"status",
	"origin_address",
	"origin_latitude",
	"origin_longitude",
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

// Create сохраняет новое бронирование
// Если в контексте есть активная транзакция, выполняется внутри неё.
// Нарушение exclusion constraint (пересекающееся неотменённое бронирование)
// транслируется в ErrTimeConflict
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	booking.UpdatedAt = booking.CreatedAt

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(bookingColumns...).
		Values(
			booking.ID,
			booking.ClientID,
			booking.ProfessionalID,
			booking.Date,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.OriginAddress,
			booking.OriginLocation.Latitude,
			booking.OriginLocation.Longitude,
			booking.CreatedAt,
			booking.UpdatedAt,
		).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgExclusionViolation {
			return nil, ErrTimeConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

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

// GetByClientID получает историю бронирований клиента
// Опционально фильтрует по статусу
func (r *Repository) GetByClientID(ctx context.Context, clientID uuid.UUID, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("booking_date DESC, start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByProfessionalAndDate получает неотменённые бронирования профессионала на дату,
// отсортированные по времени начала.
// Внутри транзакции строки блокируются (FOR UPDATE) - используется workflow
// создания бронирования
func (r *Repository) GetByProfessionalAndDate(ctx context.Context, professionalID uuid.UUID, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"booking_date": domain.DateOnly(date)}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProfessionalAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// HasTimeConflict авторитетная проверка конфликта по хранилищу:
// существует ли неотменённое бронирование профессионала на дату,
// пересекающееся с интервалом [startTime, endTime).
// Полуоткрытая семантика - касание границ конфликтом не считается.
// excludeID исключает из проверки собственное бронирование (при переносе)
func (r *Repository) HasTimeConflict(
	ctx context.Context,
	professionalID uuid.UUID,
	date time.Time,
	startTime, endTime types.TimeString,
	excludeID *uuid.UUID,
) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"booking_date": domain.DateOnly(date)}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Where(squirrel.Lt{"start_time": endTime}).
		Where(squirrel.Gt{"end_time": startTime}).
		Limit(1)

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasTimeConflict - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: HasTimeConflict - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// UpdateStatus обновляет статус бронирования
// Допустимость перехода проверяется доменной моделью до вызова
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в доменную модель
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var lat, lon float64

	err := row.Scan(
		&booking.ID,
		&booking.ClientID,
		&booking.ProfessionalID,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.OriginAddress,
		&lat,
		&lon,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.OriginLocation = domain.Location{Latitude: lat, Longitude: lon}
	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
