package report

import (
	"context"
	"fmt"
	"time"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/google/uuid"
)

// CreateSession validates the birth input, stores a pending session and
// hands it to the background pipeline
func (s *Service) CreateSession(ctx context.Context, userID uuid.UUID, birth domain.BirthInput) (*domain.ReportSession, error) {
	if err := birth.Validate(); err != nil {
		return nil, domain.NewBusinessError(err)
	}

	if _, err := s.UserRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	paid, err := s.PaymentRepo.HasPaidUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !paid {
		return nil, domain.ErrPaymentRequired
	}

	now := time.Now().UTC()
	session := &domain.ReportSession{
		ID:           uuid.New(),
		UserID:       userID,
		Status:       domain.SessionStatusPending,
		FullName:     birth.FullName,
		BirthDate:    birth.BirthDate,
		BirthTime:    birth.BirthTime,
		BirthCity:    birth.BirthCity,
		BirthCountry: birth.BirthCountry,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.SessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	if err := s.Dispatcher.DispatchReportJob(ctx, session.ID); err != nil {
		// the session stays pending; the reaper or a manual retry picks it up
		s.Log.Error("failed to dispatch report job",
			"error", err,
			"session_id", session.ID,
		)
		return session, fmt.Errorf("failed to dispatch report job: %w", err)
	}

	s.Log.Info("report session created",
		"session_id", session.ID,
		"user_id", userID,
	)

	return session, nil
}

// GetSession fetches a session scoped to its owner
func (s *Service) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*domain.ReportSession, error) {
	session, err := s.SessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.UserID != userID {
		return nil, domain.ErrNotFound
	}

	return session, nil
}
