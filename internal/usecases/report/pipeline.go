package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/AndreaVaz0608/skyai/internal/usecases/numerology"
	"github.com/google/uuid"
)

const resultCacheTTL = 24 * time.Hour

// ProcessSession drives one session through the full pipeline. Safe to call
// concurrently and repeatedly for the same id: the processing claim is a
// compare-and-set, so exactly one caller does the work.
func (s *Service) ProcessSession(ctx context.Context, sessionID uuid.UUID) error {
	session, err := s.SessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}

	if session.Status.IsTerminal() {
		s.Log.Debug("session already terminal, skipping",
			"session_id", sessionID,
			"status", session.Status,
		)
		return nil
	}

	if err := s.SessionRepo.MarkProcessing(ctx, sessionID); err != nil {
		if errors.Is(err, domain.ErrSessionTaken) {
			s.Log.Debug("session claimed elsewhere", "session_id", sessionID)
			return nil
		}
		return err
	}

	result, err := s.generate(ctx, session)
	if err != nil {
		return s.failSession(ctx, sessionID, err)
	}

	if err := s.SessionRepo.Complete(ctx, sessionID, result); err != nil {
		return err
	}

	s.cacheResult(ctx, sessionID, result)

	s.Log.Info("report session completed",
		"session_id", sessionID,
		"structured", result.SunSign != nil,
	)

	return nil
}

// generate computes the chart and numbers, builds the prompt, calls the
// generator and interprets the reply
func (s *Service) generate(ctx context.Context, session *domain.ReportSession) (*domain.SessionResult, error) {
	birth := session.Birth()

	position, err := s.Astro.ResolvePosition(ctx, birth)
	if err != nil {
		return nil, err
	}

	chart, err := s.Astro.BuildChart(ctx, position)
	if err != nil {
		return nil, err
	}

	isoDate, err := domain.ParseBirthDate(birth.BirthDate)
	if err != nil {
		return nil, domain.NewBusinessError(err)
	}
	numbers := numerology.Profile(birth.FullName, isoDate)

	prompt := BuildPrompt(birth, chart, numbers)

	reply, err := s.Generator.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	s.archiveReply(ctx, session.ID, prompt, reply)

	interpreted := InterpretReply(reply)

	result := &domain.SessionResult{
		Narrative: interpreted.Narrative(),
	}

	// computed values are authoritative; the generator echo is ignored.
	// a raw-text fallback keeps the structured columns empty.
	if _, structured := interpreted.(*domain.StructuredReport); structured {
		sunSign := string(chart.SignOf(domain.BodySun))
		moonSign := string(chart.SignOf(domain.BodyMoon))
		ascendant := string(chart.SignOf(domain.BodyAscendant))

		result.SunSign = &sunSign
		result.MoonSign = &moonSign
		result.Ascendant = &ascendant
		result.LifePath = &numbers.LifePath
		result.SoulUrge = &numbers.SoulUrge
		result.Expression = &numbers.Expression
	}

	return result, nil
}

// failSession records the failure and alerts on infrastructure errors
func (s *Service) failSession(ctx context.Context, sessionID uuid.UUID, cause error) error {
	if err := s.SessionRepo.Fail(ctx, sessionID, cause.Error()); err != nil {
		s.Log.Error("failed to mark session failed",
			"error", err,
			"session_id", sessionID,
		)
		return err
	}

	s.Log.Warn("report session failed",
		"session_id", sessionID,
		"reason", cause.Error(),
	)

	if s.Alerter != nil && !domain.IsBusinessError(cause) {
		alertCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
		defer cancel()
		if err := s.Alerter.SendAlert(alertCtx, fmt.Sprintf("report session %s failed: %v", sessionID, cause)); err != nil {
			s.Log.Warn("failed to send failure alert", "error", err)
		}
	}

	return cause
}

// archiveReply stores the prompt and raw reply in object storage, best effort
func (s *Service) archiveReply(ctx context.Context, sessionID uuid.UUID, prompt, reply string) {
	if s.Archive == nil {
		return
	}

	prefix := fmt.Sprintf("sessions/%s", sessionID)

	if err := s.Archive.PutFile(ctx, prefix+"/prompt.txt", []byte(prompt), "text/plain"); err != nil {
		s.Log.Warn("failed to archive prompt", "error", err, "session_id", sessionID)
	}
	if err := s.Archive.PutFile(ctx, prefix+"/reply.txt", []byte(reply), "text/plain"); err != nil {
		s.Log.Warn("failed to archive reply", "error", err, "session_id", sessionID)
	}
}

// cacheResult stores the completed result for fast reads, best effort
func (s *Service) cacheResult(ctx context.Context, sessionID uuid.UUID, result *domain.SessionResult) {
	if s.Cache == nil {
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return
	}

	key := "report:result:" + sessionID.String()
	if err := s.Cache.Set(ctx, key, string(payload), resultCacheTTL); err != nil {
		s.Log.Warn("failed to cache session result",
			"error", err,
			"session_id", sessionID,
		)
	}
}
