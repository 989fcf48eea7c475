package repository

import (
	"context"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/AndreaVaz0608/skyai/internal/ports/persistence"
	"github.com/google/uuid"
)

// ICreditRepo accesses per-user credit ledgers.
type ICreditRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.CreditLedger, error)

	// ConsumeGuruQuestion increments the guru counter only while it is
	// below limit. Returns domain.ErrQuotaExceeded when the quota is spent.
	ConsumeGuruQuestion(ctx context.Context, userID uuid.UUID, limit int) error

	// RefundGuruQuestion hands back one consumed guru question, flooring
	// at zero. Used when the spend succeeded but the answer never came.
	RefundGuruQuestion(ctx context.Context, userID uuid.UUID) error

	// ConsumeCompatibility flips the one-per-cycle compatibility flag.
	// Returns domain.ErrQuotaExceeded when already used.
	ConsumeCompatibility(ctx context.Context, userID uuid.UUID) error

	// ResetTx zeroes the ledger inside a payment ingestion transaction,
	// creating the row when missing.
	ResetTx(ctx context.Context, tx persistence.Transaction, userID uuid.UUID) error
}
