package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SMC-TurfService/pkg/metrics"
)

// DBExecutor общий интерфейс выполнения запросов: *sql.DB, *sql.Tx,
// *dbmetrics.DB и *dbmetrics.Tx его реализуют
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// TxExecutor интерфейс транзакции
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

// poolStatsInterval период публикации статистики connection pool
const poolStatsInterval = 15 * time.Second

// DB wraps *sql.DB and reports query latency and pool stats to Prometheus.
type DB struct {
	db      *sql.DB
	metrics *metrics.Metrics
	service string
}

// WrapWithDefault оборачивает *sql.DB и запускает фоновую публикацию
// статистики пула; stopCh останавливает её при shutdown
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, serviceName string, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, metrics: m, service: serviceName}

	go func() {
		ticker := time.NewTicker(poolStatsInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.SetDBPoolStats(db.Stats())
			case <-stopCh:
				return
			}
		}
	}()

	return wrapped
}

func (d *DB) observe(operation string, start time.Time) {
	if d.metrics != nil {
		d.metrics.ObserveDBQuery(operation, time.Since(start))
	}
}

// QueryRowContext выполняет запрос, возвращающий одну строку
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe("query_row", time.Now())
	return d.db.QueryRowContext(ctx, query, args...)
}

// QueryContext выполняет запрос, возвращающий множество строк
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe("query", time.Now())
	return d.db.QueryContext(ctx, query, args...)
}

// ExecContext выполняет запрос без результата
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe("exec", time.Now())
	return d.db.ExecContext(ctx, query, args...)
}

// BeginTx начинает транзакцию; запросы внутри неё тоже попадают в метрики
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	defer d.observe("begin_tx", time.Now())
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, parent: d}, nil
}

// Tx обёртка *sql.Tx с метриками
type Tx struct {
	tx     *sql.Tx
	parent *DB
}

func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer t.parent.observe("tx_query_row", time.Now())
	return t.tx.QueryRowContext(ctx, query, args...)
}

func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer t.parent.observe("tx_query", time.Now())
	return t.tx.QueryContext(ctx, query, args...)
}

func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer t.parent.observe("tx_exec", time.Now())
	return t.tx.ExecContext(ctx, query, args...)
}

func (t *Tx) Commit() error {
	defer t.parent.observe("tx_commit", time.Now())
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}
