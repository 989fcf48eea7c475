package guruRepo

import (
	"context"
	"fmt"

	ports "github.com/AndreaVaz0608/skyai/internal/ports/repository"

	"log/slog"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/AndreaVaz0608/skyai/internal/ports/persistence"
	"github.com/google/uuid"
)

type guruColumns struct {
	TableName string
	ID        string
	UserID    string
	Question  string
	Answer    string
	CreatedAt string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns guruColumns
}

// New creates the guru question repository
func New(db persistence.Persistence, log *slog.Logger) ports.IGuruRepo {
	cols := guruColumns{
		TableName: "guru_questions",
		ID:        "id",
		UserID:    "user_id",
		Question:  "question",
		Answer:    "answer",
		CreatedAt: "created_at",
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
		r.columns.ID,
		r.columns.UserID,
		r.columns.Question,
		r.columns.Answer,
		r.columns.CreatedAt,
	)
}

// Create stores an answered question
func (r *Repository) Create(ctx context.Context, question *domain.GuruQuestion) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5)`,
		r.columns.TableName,
		r.allColumns(),
	)

	err := r.db.Exec(ctx, query,
		question.ID,
		question.UserID,
		question.Question,
		question.Answer,
		question.CreatedAt,
	)
	if err != nil {
		r.Log.Error("failed to create guru question",
			"error", err,
			"question_id", question.ID,
			"user_id", question.UserID,
		)
		return fmt.Errorf("failed to create guru question: %w", err)
	}

	r.Log.Debug("guru question created",
		"question_id", question.ID,
		"user_id", question.UserID,
	)
	return nil
}

// ListByUser fetches the newest questions for a user
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.GuruQuestion, error) {
	if limit <= 0 {
		limit = 20
	}

	var questions []domain.GuruQuestion

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC LIMIT $2`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.UserID,
		r.columns.CreatedAt,
	)

	err := r.db.Select(ctx, &questions, query, userID, limit)
	if err != nil {
		r.Log.Error("failed to list guru questions",
			"error", err,
			"user_id", userID,
		)
		return nil, fmt.Errorf("failed to list guru questions: %w", err)
	}

	return questions, nil
}
