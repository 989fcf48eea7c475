package repository

import (
	"context"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/google/uuid"
)

// ICompatibilityRepo stores compatibility readings.
type ICompatibilityRepo interface {
	Create(ctx context.Context, reading *domain.CompatibilityReading) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CompatibilityReading, error)
}
