package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type ctxKey string

const txKey ctxKey = "tx"

const (
	DefaultMaxWait   = 20 * time.Second
	DefaultTxTimeout = 60 * time.Second
)

// TxOptions bounds a transaction. MaxWait limits connection acquisition,
// Timeout limits the whole transaction including commit. Zero disables a bound.
type TxOptions struct {
	MaxWait time.Duration
	Timeout time.Duration
}

type TransactionManager struct {
	db   *sqlx.DB
	opts TxOptions
}

func NewTransactionManager(db *sqlx.DB, opts TxOptions) *TransactionManager {
	return &TransactionManager{db: db, opts: opts}
}

// WithTransaction runs fn with the manager's default bounds.
func (tm *TransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.WithTransactionTimeout(ctx, tm.opts, fn)
}

// WithTransactionTimeout runs fn inside one transaction. The transaction is
// stored in the context handed to fn; stores pick it up via GetExecutor.
// Any error from fn rolls everything back.
func (tm *TransactionManager) WithTransactionTimeout(ctx context.Context, opts TxOptions, fn func(ctx context.Context) error) error {
	waitCtx, cancelWait := withOptionalTimeout(ctx, opts.MaxWait)
	conn, err := tm.db.Connx(waitCtx)
	cancelWait()
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	runCtx, cancelRun := withOptionalTimeout(ctx, opts.Timeout)
	defer cancelRun()

	tx, err := conn.BeginTxx(runCtx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if opts.Timeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL statement_timeout = %d", opts.Timeout.Milliseconds())
		if _, err := tx.ExecContext(runCtx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("set statement timeout: %w", err)
		}
	}

	txCtx := context.WithValue(runCtx, txKey, tx)

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func withOptionalTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

func GetExecutor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
