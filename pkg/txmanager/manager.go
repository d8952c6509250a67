package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-TurfService/pkg/dbmetrics"
)

// pgSerializationFailure код ошибки PostgreSQL при конфликте сериализуемых транзакций
const pgSerializationFailure = "40001"

// maxRetries число повторов сериализуемой транзакции при конфликте
const maxRetries = 3

// ErrTransaction возвращается при ошибках управления транзакцией
var ErrTransaction = errors.New("txmanager: transaction error")

// TxBeginner то, что умеет начинать транзакции (обычно *dbmetrics.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager runs functions inside database transactions. The
// active transaction is propagated through the context, so repositories
// pick it up via dbmetrics.GetExecutor.
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает новый transaction manager
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable runs fn in a SERIALIZABLE transaction, retrying up to
// maxRetries times on serialization conflicts (SQLSTATE 40001).
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		err = m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
		if !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
	}

	if err := fn(dbmetrics.WithExecutor(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w: rollback after %v: %v", ErrTransaction, err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", ErrTransaction, err)
	}
	return nil
}

// isSerializationFailure проверяет, является ли ошибка конфликтом сериализации
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pgSerializationFailure
}
