package persistence

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Persistence is the query surface shared by the database handle and an open
// transaction. Repositories run the same statements against either.
type Persistence interface {
	Get(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Select(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Exec(ctx context.Context, query string, args ...interface{}) error
	ExecWithResult(ctx context.Context, query string, args ...interface{}) (int64, error)
	NamedExec(ctx context.Context, query string, arg interface{}) error
	NamedExecWithResult(ctx context.Context, query string, arg interface{}) (int64, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	NamedQuery(ctx context.Context, query string, arg interface{}) (*sqlx.Rows, error)
}

// Transaction is an open transaction. Commit or Rollback exactly once.
type Transaction interface {
	Persistence
	Commit() error
	Rollback() error
}

// Transactor starts transactions. WithTransaction commits when fn returns
// nil and rolls back otherwise.
type Transactor interface {
	BeginTx(ctx context.Context) (Transaction, error)
	WithTransaction(ctx context.Context, fn func(context.Context, Transaction) error) error
}
