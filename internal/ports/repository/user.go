package repository

import (
	"context"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/AndreaVaz0608/skyai/internal/ports/persistence"
	"github.com/google/uuid"
)

// IUserRepo accesses application accounts.
type IUserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	BeginTx(ctx context.Context) (persistence.Transaction, error)
	WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error

	// Transactional variants
	GetByEmailTx(ctx context.Context, tx persistence.Transaction, email string) (*domain.User, error)
}
