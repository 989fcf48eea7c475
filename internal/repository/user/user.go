package userRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	ports "github.com/AndreaVaz0608/skyai/internal/ports/repository"

	"log/slog"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/AndreaVaz0608/skyai/internal/ports/persistence"
	"github.com/google/uuid"
)

type userColumns struct {
	TableName string
	ID        string
	Email     string
	Name      string
	CreatedAt string
}

type Repository struct {
	db         persistence.Persistence
	transactor persistence.Transactor
	Log        *slog.Logger
	columns    userColumns
}

// New creates the user repository
func New(db persistence.Persistence, transactor persistence.Transactor, log *slog.Logger) ports.IUserRepo {
	cols := userColumns{
		TableName: "users",
		ID:        "id",
		Email:     "email",
		Name:      "name",
		CreatedAt: "created_at",
	}
	return &Repository{
		db:         db,
		transactor: transactor,
		Log:        log,
		columns:    cols,
	}
}

// allColumns returns all columns as one string (4 fields)
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s",
		r.columns.ID,
		r.columns.Email,
		r.columns.Name,
		r.columns.CreatedAt,
	)
}

// Create inserts a new user
func (r *Repository) Create(ctx context.Context, user *domain.User) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4)`,
		r.columns.TableName,
		r.allColumns(),
	)

	err := r.db.Exec(ctx, query,
		user.ID,
		strings.ToLower(user.Email),
		user.Name,
		user.CreatedAt,
	)
	if err != nil {
		r.Log.Error("failed to create user",
			"error", err,
			"user_id", user.ID,
		)
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.Log.Debug("user created successfully",
		"user_id", user.ID,
	)
	return nil
}

// GetByID fetches a user by id
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ID,
	)

	err := r.db.Get(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("user not found", "user_id", id)
			return nil, domain.ErrNotFound
		}
		r.Log.Error("failed to get user",
			"error", err,
			"user_id", id,
		)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetByEmail fetches a user by e-mail, case insensitive
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getByEmail(ctx, r.db, email)
}

// BeginTx explicitly starts a transaction
func (r *Repository) BeginTx(ctx context.Context) (persistence.Transaction, error) {
	return r.transactor.BeginTx(ctx)
}

// WithTransaction runs fn in a transaction with automatic commit/rollback
func (r *Repository) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	return r.transactor.WithTransaction(ctx, fn)
}

// GetByEmailTx fetches a user by e-mail inside a transaction
func (r *Repository) GetByEmailTx(ctx context.Context, tx persistence.Transaction, email string) (*domain.User, error) {
	return r.getByEmail(ctx, tx, email)
}

func (r *Repository) getByEmail(ctx context.Context, exec persistence.Persistence, email string) (*domain.User, error) {
	var user domain.User

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.Email,
	)

	err := exec.Get(ctx, &user, query, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("user not found by email")
			return nil, domain.ErrNotFound
		}
		r.Log.Error("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}
