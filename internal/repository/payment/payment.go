package paymentRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	ports "github.com/AndreaVaz0608/skyai/internal/ports/repository"

	"log/slog"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/AndreaVaz0608/skyai/internal/ports/persistence"
	"github.com/google/uuid"
)

type paymentColumns struct {
	TableName             string
	ID                    string
	UserID                string
	ExternalTransactionID string
	Amount                string
	Status                string
	CreatedAt             string
}

type Repository struct {
	db         persistence.Persistence
	transactor persistence.Transactor
	Log        *slog.Logger
	columns    paymentColumns
}

// New creates the payment repository
func New(db persistence.Persistence, transactor persistence.Transactor, log *slog.Logger) ports.IPaymentRepo {
	cols := paymentColumns{
		TableName:             "payments",
		ID:                    "id",
		UserID:                "user_id",
		ExternalTransactionID: "external_transaction_id",
		Amount:                "amount",
		Status:                "status",
		CreatedAt:             "created_at",
	}
	return &Repository{
		db:         db,
		transactor: transactor,
		Log:        log,
		columns:    cols,
	}
}

// allColumns returns all columns as one string (6 fields)
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.UserID,
		r.columns.ExternalTransactionID,
		r.columns.Amount,
		r.columns.Status,
		r.columns.CreatedAt,
	)
}

// GetByID fetches a payment by id
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentRecord, error) {
	var payment domain.PaymentRecord

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ID,
	)

	err := r.db.Get(ctx, &payment, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("payment not found", "payment_id", id)
			return nil, domain.ErrNotFound
		}
		r.Log.Error("failed to get payment",
			"error", err,
			"payment_id", id,
		)
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &payment, nil
}

// GetByExternalID fetches a payment by the provider transaction id
func (r *Repository) GetByExternalID(ctx context.Context, externalID string) (*domain.PaymentRecord, error) {
	var payment domain.PaymentRecord

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ExternalTransactionID,
	)

	err := r.db.Get(ctx, &payment, query, externalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("payment not found by external id", "external_id", externalID)
			return nil, domain.ErrNotFound
		}
		r.Log.Error("failed to get payment by external id",
			"error", err,
			"external_id", externalID,
		)
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &payment, nil
}

// HasPaidUser reports whether the user has at least one confirmed payment
func (r *Repository) HasPaidUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool

	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1 AND %s = $2)`,
		r.columns.TableName,
		r.columns.UserID,
		r.columns.Status,
	)

	err := r.db.Get(ctx, &exists, query, userID, string(domain.PaymentStatusPaid))
	if err != nil {
		r.Log.Error("failed to check paid user",
			"error", err,
			"user_id", userID,
		)
		return false, fmt.Errorf("failed to check paid user: %w", err)
	}

	return exists, nil
}

// BeginTx explicitly starts a transaction
func (r *Repository) BeginTx(ctx context.Context) (persistence.Transaction, error) {
	return r.transactor.BeginTx(ctx)
}

// WithTransaction runs fn in a transaction with automatic commit/rollback
func (r *Repository) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	return r.transactor.WithTransaction(ctx, fn)
}

// InsertIdempotentTx inserts the payment unless the external transaction id
// is already recorded. ON CONFLICT DO NOTHING keeps redelivered webhooks
// from failing; zero affected rows signals the duplicate.
func (r *Repository) InsertIdempotentTx(ctx context.Context, tx persistence.Transaction, payment *domain.PaymentRecord) (bool, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (%s) DO NOTHING`,
		r.columns.TableName,
		r.allColumns(),
		r.columns.ExternalTransactionID,
	)

	affected, err := tx.ExecWithResult(ctx, query,
		payment.ID,
		payment.UserID,
		payment.ExternalTransactionID,
		payment.Amount,
		string(payment.Status),
		payment.CreatedAt,
	)
	if err != nil {
		r.Log.Error("failed to insert payment",
			"error", err,
			"payment_id", payment.ID,
			"external_id", payment.ExternalTransactionID,
		)
		return false, fmt.Errorf("failed to insert payment: %w", err)
	}

	if affected == 0 {
		r.Log.Debug("duplicate payment skipped",
			"external_id", payment.ExternalTransactionID,
		)
		return false, nil
	}

	r.Log.Debug("payment recorded",
		"payment_id", payment.ID,
		"external_id", payment.ExternalTransactionID,
		"amount", payment.Amount,
	)
	return true, nil
}
