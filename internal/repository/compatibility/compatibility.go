package compatibilityRepo

import (
	"context"
	"fmt"

	ports "github.com/AndreaVaz0608/skyai/internal/ports/repository"

	"log/slog"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/AndreaVaz0608/skyai/internal/ports/persistence"
	"github.com/google/uuid"
)

type compatibilityColumns struct {
	TableName          string
	ID                 string
	UserID             string
	TargetName         string
	TargetBirthDate    string
	TargetBirthTime    string
	TargetBirthCity    string
	TargetBirthCountry string
	ResultText         string
	CreatedAt          string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns compatibilityColumns
}

// New creates the compatibility reading repository
func New(db persistence.Persistence, log *slog.Logger) ports.ICompatibilityRepo {
	cols := compatibilityColumns{
		TableName:          "compatibility_readings",
		ID:                 "id",
		UserID:             "user_id",
		TargetName:         "target_name",
		TargetBirthDate:    "target_birth_date",
		TargetBirthTime:    "target_birth_time",
		TargetBirthCity:    "target_birth_city",
		TargetBirthCountry: "target_birth_country",
		ResultText:         "result_text",
		CreatedAt:          "created_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns returns all columns as one string (9 fields)
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.UserID,
		r.columns.TargetName,
		r.columns.TargetBirthDate,
		r.columns.TargetBirthTime,
		r.columns.TargetBirthCity,
		r.columns.TargetBirthCountry,
		r.columns.ResultText,
		r.columns.CreatedAt,
	)
}

// Create stores a compatibility reading
func (r *Repository) Create(ctx context.Context, reading *domain.CompatibilityReading) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		r.columns.TableName,
		r.allColumns(),
	)

	err := r.db.Exec(ctx, query,
		reading.ID,
		reading.UserID,
		reading.TargetName,
		reading.TargetBirthDate,
		reading.TargetBirthTime,
		reading.TargetBirthCity,
		reading.TargetBirthCountry,
		reading.ResultText,
		reading.CreatedAt,
	)
	if err != nil {
		r.Log.Error("failed to create compatibility reading",
			"error", err,
			"reading_id", reading.ID,
			"user_id", reading.UserID,
		)
		return fmt.Errorf("failed to create compatibility reading: %w", err)
	}

	r.Log.Debug("compatibility reading created",
		"reading_id", reading.ID,
		"user_id", reading.UserID,
	)
	return nil
}

// ListByUser fetches the newest readings for a user
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CompatibilityReading, error) {
	if limit <= 0 {
		limit = 20
	}

	var readings []domain.CompatibilityReading

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC LIMIT $2`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.UserID,
		r.columns.CreatedAt,
	)

	err := r.db.Select(ctx, &readings, query, userID, limit)
	if err != nil {
		r.Log.Error("failed to list compatibility readings",
			"error", err,
			"user_id", userID,
		)
		return nil, fmt.Errorf("failed to list compatibility readings: %w", err)
	}

	return readings, nil
}
