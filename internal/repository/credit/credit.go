package creditRepo

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

type creditColumns struct {
	TableName         string
	UserID            string
	GuruQuestionsUsed string
	CompatibilityUsed string
	LastReset         string
	UpdatedAt         string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns creditColumns
}

// New creates the credit ledger repository
func New(db persistence.Persistence, log *slog.Logger) ports.ICreditRepo {
	cols := creditColumns{
		TableName:         "credit_ledgers",
		UserID:            "user_id",
		GuruQuestionsUsed: "guru_questions_used",
		CompatibilityUsed: "compatibility_used",
		LastReset:         "last_reset",
		UpdatedAt:         "updated_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns returns all columns as one string (5 fields)
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s",
		r.columns.UserID,
		r.columns.GuruQuestionsUsed,
		r.columns.CompatibilityUsed,
		r.columns.LastReset,
		r.columns.UpdatedAt,
	)
}

// Get fetches the ledger for a user
func (r *Repository) Get(ctx context.Context, userID uuid.UUID) (*domain.CreditLedger, error) {
	var ledger domain.CreditLedger

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.UserID,
	)

	err := r.db.Get(ctx, &ledger, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("credit ledger not found", "user_id", userID)
			return nil, domain.ErrNotFound
		}
		r.Log.Error("failed to get credit ledger",
			"error", err,
			"user_id", userID,
		)
		return nil, fmt.Errorf("failed to get credit ledger: %w", err)
	}

	return &ledger, nil
}

// ConsumeGuruQuestion increments the guru counter. The counter guard in the
// WHERE clause keeps concurrent spends from passing the limit: zero affected
// rows means the quota is gone.
func (r *Repository) ConsumeGuruQuestion(ctx context.Context, userID uuid.UUID, limit int) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = %s + 1, %s = NOW() WHERE %s = $1 AND %s < $2`,
		r.columns.TableName,
		r.columns.GuruQuestionsUsed,
		r.columns.GuruQuestionsUsed,
		r.columns.UpdatedAt,
		r.columns.UserID,
		r.columns.GuruQuestionsUsed,
	)

	affected, err := r.db.ExecWithResult(ctx, query, userID, limit)
	if err != nil {
		r.Log.Error("failed to consume guru question",
			"error", err,
			"user_id", userID,
		)
		return fmt.Errorf("failed to consume guru question: %w", err)
	}

	if affected == 0 {
		r.Log.Debug("guru quota exhausted", "user_id", userID)
		return domain.ErrQuotaExceeded
	}

	return nil
}

// RefundGuruQuestion decrements the guru counter, never below zero
func (r *Repository) RefundGuruQuestion(ctx context.Context, userID uuid.UUID) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = GREATEST(%s - 1, 0), %s = NOW() WHERE %s = $1`,
		r.columns.TableName,
		r.columns.GuruQuestionsUsed,
		r.columns.GuruQuestionsUsed,
		r.columns.UpdatedAt,
		r.columns.UserID,
	)

	if err := r.db.Exec(ctx, query, userID); err != nil {
		r.Log.Error("failed to refund guru question",
			"error", err,
			"user_id", userID,
		)
		return fmt.Errorf("failed to refund guru question: %w", err)
	}

	return nil
}

// ConsumeCompatibility flips the one-per-cycle flag. Zero affected rows
// means it was already used.
func (r *Repository) ConsumeCompatibility(ctx context.Context, userID uuid.UUID) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE, %s = NOW() WHERE %s = $1 AND %s = FALSE`,
		r.columns.TableName,
		r.columns.CompatibilityUsed,
		r.columns.UpdatedAt,
		r.columns.UserID,
		r.columns.CompatibilityUsed,
	)

	affected, err := r.db.ExecWithResult(ctx, query, userID)
	if err != nil {
		r.Log.Error("failed to consume compatibility",
			"error", err,
			"user_id", userID,
		)
		return fmt.Errorf("failed to consume compatibility: %w", err)
	}

	if affected == 0 {
		r.Log.Debug("compatibility already used", "user_id", userID)
		return domain.ErrQuotaExceeded
	}

	return nil
}

// ResetTx zeroes the ledger inside a payment transaction, creating the row
// when the user has none yet
func (r *Repository) ResetTx(ctx context.Context, tx persistence.Transaction, userID uuid.UUID) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, 0, FALSE, NOW(), NOW())
		ON CONFLICT (%s) DO UPDATE SET %s = 0, %s = FALSE, %s = NOW(), %s = NOW()`,
		r.columns.TableName,
		r.columns.UserID,
		r.columns.GuruQuestionsUsed,
		r.columns.CompatibilityUsed,
		r.columns.LastReset,
		r.columns.UpdatedAt,
		r.columns.UserID,
		r.columns.GuruQuestionsUsed,
		r.columns.CompatibilityUsed,
		r.columns.LastReset,
		r.columns.UpdatedAt,
	)

	if err := tx.Exec(ctx, query, userID); err != nil {
		r.Log.Error("failed to reset credit ledger",
			"error", err,
			"user_id", userID,
		)
		return fmt.Errorf("failed to reset credit ledger: %w", err)
	}

	r.Log.Debug("credit ledger reset", "user_id", userID)
	return nil
}
