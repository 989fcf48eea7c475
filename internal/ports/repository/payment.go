package repository

import (
	"context"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/AndreaVaz0608/skyai/internal/ports/persistence"
	"github.com/google/uuid"
)

// IPaymentRepo accesses confirmed payments.
type IPaymentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentRecord, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.PaymentRecord, error)

	BeginTx(ctx context.Context) (persistence.Transaction, error)
	WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error

	// InsertIdempotentTx inserts the record unless one with the same
	// external transaction id already exists. Returns false on conflict
	// without error.
	InsertIdempotentTx(ctx context.Context, tx persistence.Transaction, payment *domain.PaymentRecord) (bool, error)

	// HasPaidUser reports whether the user has at least one confirmed
	// payment on record.
	HasPaidUser(ctx context.Context, userID uuid.UUID) (bool, error)
}
