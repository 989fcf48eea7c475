package report

import (
	"context"
	"fmt"
	"time"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/google/uuid"
)

// CreateCompatibility generates a love compatibility reading between the
// user's latest completed report and a partner. One reading per payment
// cycle.
func (s *Service) CreateCompatibility(ctx context.Context, userID uuid.UUID, target domain.BirthInput) (*domain.CompatibilityReading, error) {
	if target.FullName == "" {
		return nil, domain.NewBusinessError(&domain.ValidationError{Field: "full_name", Reason: "is required"})
	}
	if _, err := domain.ParseBirthDate(target.BirthDate); err != nil {
		return nil, domain.NewBusinessError(err)
	}

	sessions, err := s.SessionRepo.ListByUser(ctx, userID, 20)
	if err != nil {
		return nil, err
	}

	var latest *domain.ReportSession
	for i := range sessions {
		if sessions[i].Status == domain.SessionStatusCompleted {
			latest = &sessions[i]
			break
		}
	}
	if latest == nil {
		return nil, domain.NewBusinessError(fmt.Errorf("no completed report to compare against"))
	}

	if err := s.CreditRepo.ConsumeCompatibility(ctx, userID); err != nil {
		return nil, err
	}

	text, err := s.Generator.Generate(ctx, BuildCompatibilityPrompt(latest.Birth(), target))
	if err != nil {
		return nil, err
	}

	reading := &domain.CompatibilityReading{
		ID:                 uuid.New(),
		UserID:             userID,
		TargetName:         target.FullName,
		TargetBirthDate:    target.BirthDate,
		TargetBirthTime:    target.BirthTime,
		TargetBirthCity:    target.BirthCity,
		TargetBirthCountry: target.BirthCountry,
		ResultText:         DedupeSections(text),
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.CompatibilityRepo.Create(ctx, reading); err != nil {
		return nil, err
	}

	s.Log.Info("compatibility reading created",
		"reading_id", reading.ID,
		"user_id", userID,
	)

	return reading, nil
}
