package report

import (
	"context"
	"fmt"
	"time"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/google/uuid"
)

// AskGuru answers a follow-up question against the user's latest completed
// report. Each question spends one unit of the per-payment quota; the quota
// is consumed before the generator call (so concurrent spends never pass the
// limit) and handed back when generation fails.
func (s *Service) AskGuru(ctx context.Context, userID uuid.UUID, question string) (*domain.GuruQuestion, error) {
	if question == "" {
		return nil, domain.NewBusinessError(&domain.ValidationError{Field: "question", Reason: "is required"})
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
		return nil, domain.NewBusinessError(fmt.Errorf("no completed report to ask about"))
	}

	if err := s.CreditRepo.ConsumeGuruQuestion(ctx, userID, s.GuruQuestionLimit); err != nil {
		return nil, err
	}

	answer, err := s.Generator.Generate(ctx, BuildGuruPrompt(question, latest))
	if err != nil {
		if refundErr := s.CreditRepo.RefundGuruQuestion(ctx, userID); refundErr != nil {
			s.Log.Error("failed to refund guru question",
				"error", refundErr,
				"user_id", userID,
			)
		}
		return nil, err
	}

	record := &domain.GuruQuestion{
		ID:        uuid.New(),
		UserID:    userID,
		Question:  question,
		Answer:    answer,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.GuruRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.Log.Info("guru question answered",
		"question_id", record.ID,
		"user_id", userID,
	)

	return record, nil
}
