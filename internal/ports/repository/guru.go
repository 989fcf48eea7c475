package repository

import (
	"context"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/google/uuid"
)

// IGuruRepo stores answered guru questions.
type IGuruRepo interface {
	Create(ctx context.Context, question *domain.GuruQuestion) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.GuruQuestion, error)
}
