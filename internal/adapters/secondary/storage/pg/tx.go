package pg

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Tx wraps sqlx.Tx. ctx is the context the transaction was opened with and
// is kept for logging; query methods use the caller's context.
type Tx struct {
	tx  *sqlx.Tx
	ctx context.Context
}

// Get runs a query in the transaction and scans a single row
func (t *Tx) Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return t.tx.GetContext(ctx, dest, query, args...)
}

// Select runs a query in the transaction and scans all rows
func (t *Tx) Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	return t.tx.SelectContext(ctx, dest, query, args...)
}

// Exec runs a statement in the transaction without returning data
func (t *Tx) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := t.tx.ExecContext(ctx, query, args...)
	return err
}

// ExecWithResult runs a statement in the transaction and returns the number of affected rows
func (t *Tx) ExecWithResult(ctx context.Context, query string, args ...interface{}) (int64, error) {
	result, err := t.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// NamedExec runs a named statement in the transaction
func (t *Tx) NamedExec(ctx context.Context, query string, arg interface{}) error {
	_, err := t.tx.NamedExecContext(ctx, query, arg)
	return err
}

// NamedExecWithResult runs a named statement in the transaction and returns the number of affected rows
func (t *Tx) NamedExecWithResult(ctx context.Context, query string, arg interface{}) (int64, error) {
	result, err := t.tx.NamedExecContext(ctx, query, arg)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// QueryRow runs a query in the transaction and returns a single row for scanning
func (t *Tx) QueryRow(ctx context.Context, query string, args ...interface{}) *sqlx.Row {
	return t.tx.QueryRowxContext(ctx, query, args...)
}

// NamedQuery runs a named query in the transaction.
// Note: sqlx.Tx has no NamedQueryContext, so ctx is unused.
func (t *Tx) NamedQuery(ctx context.Context, query string, arg interface{}) (*sqlx.Rows, error) {
	return t.tx.NamedQuery(query, arg)
}

func (t *Tx) Commit() error {
	return t.tx.Commit()
}

func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}
