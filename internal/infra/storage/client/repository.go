package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/t1mga/FSP-BookingService/internal/domain"
	"github.com/t1mga/FSP-BookingService/pkg/dbmetrics"
	"github.com/t1mga/FSP-BookingService/pkg/psqlbuilder"
)

const pgUniqueViolation = "23505"

var clientColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"latitude",
	"longitude",
	"created_at",
}

// Repository репозиторий для работы с клиентами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет нового клиента
func (r *Repository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clients").
		Columns(clientColumns...).
		Values(
			client.ID,
			client.Name,
			client.Email,
			client.Phone,
			client.Location.Latitude,
			client.Location.Longitude,
			client.CreatedAt,
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

	return client, nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var client domain.Client
	var lat, lon float64

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&client.ID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&lat,
		&lon,
		&client.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan client: %v", ErrScanRow, err)
	}

	client.Location = domain.Location{Latitude: lat, Longitude: lon}
	return &client, nil
}
