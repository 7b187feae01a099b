package dbmetrics

import "context"

// Транзакция передается репозиториям через context.
// Репозитории вызывают GetExecutor и прозрачно присоединяются к активной
// транзакции, не зная о её существовании.

type executorKey struct{}

// WithExecutor кладет активную транзакцию в контекст
func WithExecutor(ctx context.Context, exec TxExecutor) context.Context {
	return context.WithValue(ctx, executorKey{}, exec)
}

// GetExecutor возвращает executor из контекста или fallback, если транзакции нет
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if exec, ok := ctx.Value(executorKey{}).(TxExecutor); ok {
		return exec
	}
	return fallback
}

// IsInTransaction возвращает true, если в контексте есть активная транзакция
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorKey{}).(TxExecutor)
	return ok
}
