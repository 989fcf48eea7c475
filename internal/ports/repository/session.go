package repository

import (
	"context"
	"time"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/google/uuid"
)

// ISessionRepo accesses report sessions.
type ISessionRepo interface {
	Create(ctx context.Context, session *domain.ReportSession) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ReportSession, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReportSession, error)

	// MarkProcessing claims a pending session. It updates the row only when
	// the stored status is still pending and returns domain.ErrSessionTaken
	// when another worker got there first.
	MarkProcessing(ctx context.Context, id uuid.UUID) error

	Complete(ctx context.Context, id uuid.UUID, result *domain.SessionResult) error
	Fail(ctx context.Context, id uuid.UUID, reason string) error

	// ListStuckProcessing returns sessions claimed before the cutoff that
	// never reached a terminal status.
	ListStuckProcessing(ctx context.Context, cutoff time.Time) ([]domain.ReportSession, error)
}
