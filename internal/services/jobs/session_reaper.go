package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AndreaVaz0608/skyai/internal/ports/repository"
)

const (
	sessionReaperName     = "session-reaper"
	sessionReaperInterval = 10 * time.Minute
	processingDeadline    = 30 * time.Minute
)

// SessionReaper fails report sessions stuck in processing. A worker crash
// between the claim and the terminal update would otherwise leave the row
// processing forever.
type SessionReaper struct {
	sessionRepo repository.ISessionRepo
	log         *slog.Logger
}

func NewSessionReaper(
	sessionRepo repository.ISessionRepo,
	log *slog.Logger,
) *SessionReaper {
	return &SessionReaper{
		sessionRepo: sessionRepo,
		log:         log,
	}
}

func (j *SessionReaper) Name() string {
	return sessionReaperName
}

// NextRun every 10 minutes
func (j *SessionReaper) NextRun(now time.Time) time.Time {
	return now.Add(sessionReaperInterval)
}

// Run fails every session claimed more than 30 minutes ago
func (j *SessionReaper) Run(ctx context.Context) error {
	cutoff := time.Now().Add(-processingDeadline)

	stuck, err := j.sessionRepo.ListStuckProcessing(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list stuck sessions: %w", err)
	}

	for _, session := range stuck {
		if err := j.sessionRepo.Fail(ctx, session.ID, "processing deadline exceeded"); err != nil {
			j.log.Warn("failed to reap session",
				"error", err,
				"session_id", session.ID,
			)
			continue
		}
		j.log.Info("stuck session failed by reaper", "session_id", session.ID)
	}

	return nil
}
