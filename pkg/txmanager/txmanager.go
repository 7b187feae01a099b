package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/t1mga/FSP-BookingService/pkg/dbmetrics"
)

// Коды ошибок Postgres, при которых сериализуемую транзакцию можно повторить
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// Максимальное количество попыток выполнения сериализуемой транзакции
const maxSerializableRetries = 3

var (
	// ErrBeginTx возвращается при ошибке открытия транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается при ошибке коммита транзакции
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrRetriesExhausted возвращается, когда все попытки сериализуемой транзакции исчерпаны
	ErrRetriesExhausted = errors.New("txmanager: serializable transaction retries exhausted")
)

// TxBeginner интерфейс источника транзакций (*dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager управляет транзакциями поверх обёрнутой метриками БД
// Транзакция передается в fn через контекст (dbmetrics.WithExecutor),
// репозитории присоединяются к ней прозрачно
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в SERIALIZABLE транзакции
// При serialization failure или deadlock повторяет выполнение (до maxSerializableRetries раз):
// вторая из двух конкурирующих транзакций обязана либо увидеть результат первой, либо упасть
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	opts := &sql.TxOptions{Isolation: sql.LevelSerializable}

	var lastErr error
	for attempt := 0; attempt < maxSerializableRetries; attempt++ {
		lastErr = m.run(ctx, opts, fn)
		if lastErr == nil || !isRetryable(lastErr) {
			return lastErr
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}

	return fmt.Errorf("%w: %v", ErrRetriesExhausted, lastErr)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	if err := fn(dbmetrics.WithExecutor(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		if isRetryable(err) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrCommitTx, err)
	}

	return nil
}

// isRetryable определяет, стоит ли повторять транзакцию после ошибки
func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	code := string(pqErr.Code)
	return code == pgSerializationFailure || code == pgDeadlockDetected
}
