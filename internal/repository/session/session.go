package sessionRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	ports "github.com/AndreaVaz0608/skyai/internal/ports/repository"

	"log/slog"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/AndreaVaz0608/skyai/internal/ports/persistence"
	"github.com/google/uuid"
)

type sessionColumns struct {
	TableName    string
	ID           string
	UserID       string
	Status       string
	FullName     string
	BirthDate    string
	BirthTime    string
	BirthCity    string
	BirthCountry string
	SunSign      string
	MoonSign     string
	Ascendant    string
	LifePath     string
	SoulUrge     string
	Expression   string
	Narrative    string
	ErrorReason  string
	CreatedAt    string
	UpdatedAt    string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns sessionColumns
}

// New creates the report session repository
func New(db persistence.Persistence, log *slog.Logger) ports.ISessionRepo {
	cols := sessionColumns{
		TableName:    "report_sessions",
		ID:           "id",
		UserID:       "user_id",
		Status:       "status",
		FullName:     "full_name",
		BirthDate:    "birth_date",
		BirthTime:    "birth_time",
		BirthCity:    "birth_city",
		BirthCountry: "birth_country",
		SunSign:      "sun_sign",
		MoonSign:     "moon_sign",
		Ascendant:    "ascendant",
		LifePath:     "life_path",
		SoulUrge:     "soul_urge",
		Expression:   "expression",
		Narrative:    "narrative",
		ErrorReason:  "error_reason",
		CreatedAt:    "created_at",
		UpdatedAt:    "updated_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns returns all columns as one string (18 fields)
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.UserID,
		r.columns.Status,
		r.columns.FullName,
		r.columns.BirthDate,
		r.columns.BirthTime,
		r.columns.BirthCity,
		r.columns.BirthCountry,
		r.columns.SunSign,
		r.columns.MoonSign,
		r.columns.Ascendant,
		r.columns.LifePath,
		r.columns.SoulUrge,
		r.columns.Expression,
		r.columns.Narrative,
		r.columns.ErrorReason,
		r.columns.CreatedAt,
		r.columns.UpdatedAt,
	)
}

// Create inserts a new pending session
func (r *Repository) Create(ctx context.Context, session *domain.ReportSession) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		r.columns.TableName,
		r.allColumns(),
	)

	err := r.db.Exec(ctx, query,
		session.ID,
		session.UserID,
		string(session.Status),
		session.FullName,
		session.BirthDate,
		session.BirthTime,
		session.BirthCity,
		session.BirthCountry,
		session.SunSign,
		session.MoonSign,
		session.Ascendant,
		session.LifePath,
		session.SoulUrge,
		session.Expression,
		session.Narrative,
		session.ErrorReason,
		session.CreatedAt,
		session.UpdatedAt,
	)
	if err != nil {
		r.Log.Error("failed to create session",
			"error", err,
			"session_id", session.ID,
			"user_id", session.UserID,
		)
		return fmt.Errorf("failed to create session: %w", err)
	}

	r.Log.Debug("session created successfully",
		"session_id", session.ID,
		"user_id", session.UserID,
	)
	return nil
}

// GetByID fetches a session by id
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ReportSession, error) {
	var session domain.ReportSession

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ID,
	)

	err := r.db.Get(ctx, &session, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("session not found", "session_id", id)
			return nil, domain.ErrNotFound
		}
		r.Log.Error("failed to get session",
			"error", err,
			"session_id", id,
		)
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &session, nil
}

// ListByUser fetches the newest sessions for a user
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.ReportSession, error) {
	if limit <= 0 {
		limit = 20
	}

	var sessions []domain.ReportSession

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC LIMIT $2`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.UserID,
		r.columns.CreatedAt,
	)

	err := r.db.Select(ctx, &sessions, query, userID, limit)
	if err != nil {
		r.Log.Error("failed to list sessions",
			"error", err,
			"user_id", userID,
		)
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return sessions, nil
}

// MarkProcessing claims a pending session. The status guard in the WHERE
// clause makes this a compare-and-set: zero affected rows means another
// worker already owns the session.
func (r *Repository) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2 AND %s = $3`,
		r.columns.TableName,
		r.columns.Status,
		r.columns.UpdatedAt,
		r.columns.ID,
		r.columns.Status,
	)

	affected, err := r.db.ExecWithResult(ctx, query,
		string(domain.SessionStatusProcessing),
		id,
		string(domain.SessionStatusPending),
	)
	if err != nil {
		r.Log.Error("failed to mark session processing",
			"error", err,
			"session_id", id,
		)
		return fmt.Errorf("failed to mark session processing: %w", err)
	}

	if affected == 0 {
		r.Log.Debug("session claim lost", "session_id", id)
		return domain.ErrSessionTaken
	}

	r.Log.Debug("session claimed", "session_id", id)
	return nil
}

// Complete stores the computed result and moves the session to completed.
// Guarded on processing status so terminal rows stay untouched.
func (r *Repository) Complete(ctx context.Context, id uuid.UUID, result *domain.SessionResult) error {
	query := fmt.Sprintf(`UPDATE %s SET
		%s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $9 AND %s = $10`,
		r.columns.TableName,
		r.columns.Status,
		r.columns.SunSign,
		r.columns.MoonSign,
		r.columns.Ascendant,
		r.columns.LifePath,
		r.columns.SoulUrge,
		r.columns.Expression,
		r.columns.Narrative,
		r.columns.UpdatedAt,
		r.columns.ID,
		r.columns.Status,
	)

	affected, err := r.db.ExecWithResult(ctx, query,
		string(domain.SessionStatusCompleted),
		result.SunSign,
		result.MoonSign,
		result.Ascendant,
		result.LifePath,
		result.SoulUrge,
		result.Expression,
		result.Narrative,
		id,
		string(domain.SessionStatusProcessing),
	)
	if err != nil {
		r.Log.Error("failed to complete session",
			"error", err,
			"session_id", id,
		)
		return fmt.Errorf("failed to complete session: %w", err)
	}

	if affected == 0 {
		r.Log.Warn("complete skipped, session not in processing", "session_id", id)
		return domain.ErrSessionTaken
	}

	r.Log.Debug("session completed", "session_id", id)
	return nil
}

// Fail stores the failure reason and moves the session to failed.
// Guarded on processing status so terminal rows stay untouched.
func (r *Repository) Fail(ctx context.Context, id uuid.UUID, reason string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2, %s = NOW() WHERE %s = $3 AND %s = $4`,
		r.columns.TableName,
		r.columns.Status,
		r.columns.ErrorReason,
		r.columns.UpdatedAt,
		r.columns.ID,
		r.columns.Status,
	)

	affected, err := r.db.ExecWithResult(ctx, query,
		string(domain.SessionStatusFailed),
		reason,
		id,
		string(domain.SessionStatusProcessing),
	)
	if err != nil {
		r.Log.Error("failed to fail session",
			"error", err,
			"session_id", id,
		)
		return fmt.Errorf("failed to fail session: %w", err)
	}

	if affected == 0 {
		r.Log.Warn("fail skipped, session not in processing", "session_id", id)
		return domain.ErrSessionTaken
	}

	r.Log.Debug("session failed", "session_id", id, "reason", reason)
	return nil
}

// ListStuckProcessing fetches sessions claimed before cutoff that never
// reached a terminal status
func (r *Repository) ListStuckProcessing(ctx context.Context, cutoff time.Time) ([]domain.ReportSession, error) {
	var sessions []domain.ReportSession

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s < $2`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.Status,
		r.columns.UpdatedAt,
	)

	err := r.db.Select(ctx, &sessions, query,
		string(domain.SessionStatusProcessing),
		cutoff,
	)
	if err != nil {
		r.Log.Error("failed to list stuck sessions", "error", err)
		return nil, fmt.Errorf("failed to list stuck sessions: %w", err)
	}

	return sessions, nil
}
