package professional

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
)

// Код Postgres unique_violation - занятый email
const pgUniqueViolation = "23505"

var professionalColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"latitude",
	"longitude",
	"service_radius_km",
	"active",
	"created_at",
}

var windowColumns = []string{
	"id",
	"professional_id",
	"weekday",
	"start_time",
	"end_time",
	"created_at",
}

// Repository репозиторий для работы с профессионалами и их окнами доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профессионалов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет нового профессионала вместе с окнами доступности
func (r *Repository) Create(ctx context.Context, professional *domain.Professional) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("professionals").
		Columns(professionalColumns...).
		Values(
			professional.ID,
			professional.Name,
			professional.Email,
			professional.Phone,
			professional.Location.Latitude,
			professional.Location.Longitude,
			professional.ServiceRadiusKm,
			professional.Active,
			professional.CreatedAt,
		).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	for _, window := range professional.Availability {
		if err := r.UpsertAvailability(ctx, window); err != nil {
			return nil, err
		}
	}

	return professional, nil
}

// GetByID получает профессионала с окнами доступности (без бронирований)
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	professional, err := scanProfessional(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan professional: %v", ErrScanRow, err)
	}

	windows, err := r.getWindows(ctx, id)
	if err != nil {
		return nil, err
	}
	professional.Availability = windows

	return professional, nil
}

// GetActive получает снимок всех активных профессионалов
// Только базовые поля - без окон и бронирований; используется первым фильтром
// поиска (расстояние против собственного радиуса профессионала)
func (r *Repository) GetActive(ctx context.Context) ([]*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(professionalColumns...).
		From("professionals").
		Where(squirrel.Eq{"active": true}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	professionals := make([]*domain.Professional, 0)
	for rows.Next() {
		professional, err := scanProfessional(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetActive - scan row: %v", ErrScanRow, err)
		}
		professionals = append(professionals, professional)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActive - rows error: %v", ErrScanRow, err)
	}

	return professionals, nil
}

// GetByIDWithBookings получает профессионала с окнами доступности
// и всеми неотменёнными бронированиями.
// Используется глубокой проверкой поиска и workflow создания бронирования
func (r *Repository) GetByIDWithBookings(ctx context.Context, id uuid.UUID) (*domain.Professional, error) {
	professional, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
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
	).
		From("bookings").
		Where(squirrel.Eq{"professional_id": id}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("booking_date ASC, start_time ASC")

	// Внутри транзакции создания бронирования блокируем строки бронирований
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDWithBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDWithBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var booking domain.Booking
		var lat, lon float64

		err := rows.Scan(
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
			return nil, fmt.Errorf("%w: GetByIDWithBookings - scan booking: %v", ErrScanRow, err)
		}

		booking.OriginLocation = domain.Location{Latitude: lat, Longitude: lon}
		professional.AddBooking(&booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByIDWithBookings - rows error: %v", ErrScanRow, err)
	}

	return professional, nil
}

// UpsertAvailability сохраняет окно доступности
// Для уже занятого дня недели заменяет границы окна (инвариант: не более
// одного окна на день недели, подкреплён UNIQUE (professional_id, weekday))
func (r *Repository) UpsertAvailability(ctx context.Context, window *domain.AvailabilityWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_windows").
		Columns(windowColumns...).
		Values(
			window.ID,
			window.ProfessionalID,
			int(window.Weekday),
			window.StartTime,
			window.EndTime,
			window.CreatedAt,
		).
		Suffix("ON CONFLICT (professional_id, weekday) DO UPDATE SET start_time = EXCLUDED.start_time, end_time = EXCLUDED.end_time").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpsertAvailability - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertAvailability - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeleteAvailability удаляет окно доступности на день недели
func (r *Repository) DeleteAvailability(ctx context.Context, professionalID uuid.UUID, weekday time.Weekday) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_windows").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"weekday": int(weekday)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteAvailability - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteAvailability - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteAvailability - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrWindowNotFound
	}

	return nil
}

// SetActive включает или выключает профессионала
func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("professionals").
		Set("active", active).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrProfessionalNotFound
	}

	return nil
}

// getWindows загружает окна доступности профессионала
func (r *Repository) getWindows(ctx context.Context, professionalID uuid.UUID) ([]*domain.AvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(windowColumns...).
		From("availability_windows").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getWindows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getWindows - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]*domain.AvailabilityWindow, 0)
	for rows.Next() {
		var window domain.AvailabilityWindow
		var weekday int

		err := rows.Scan(
			&window.ID,
			&window.ProfessionalID,
			&weekday,
			&window.StartTime,
			&window.EndTime,
			&window.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: getWindows - scan row: %v", ErrScanRow, err)
		}

		window.Weekday = time.Weekday(weekday)
		windows = append(windows, &window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getWindows - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanProfessional сканирует строку professionals в доменную модель
func scanProfessional(row rowScanner) (*domain.Professional, error) {
	var professional domain.Professional
	var lat, lon float64

	err := row.Scan(
		&professional.ID,
		&professional.Name,
		&professional.Email,
		&professional.Phone,
		&lat,
		&lon,
		&professional.ServiceRadiusKm,
		&professional.Active,
		&professional.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	professional.Location = domain.Location{Latitude: lat, Longitude: lon}
	return &professional, nil
}
