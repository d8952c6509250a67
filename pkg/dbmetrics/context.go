package dbmetrics

import "context"

type ctxKey struct{}

// txKey ключ, под которым transaction manager кладёт активную транзакцию
var txKey = ctxKey{}

// WithExecutor кладёт транзакцию в контекст; используется transaction manager-ами
func WithExecutor(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetExecutor returns the transaction stored in ctx, or fallback when the
// call is not running inside a managed transaction. Repositories call this
// on every query, so the same repository code works both inside and outside
// transactions.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(txKey).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction сообщает, выполняется ли запрос внутри управляемой транзакции
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey).(TxExecutor)
	return ok
}
