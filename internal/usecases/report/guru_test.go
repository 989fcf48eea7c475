package report

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedSession(userID uuid.UUID) *domain.ReportSession {
	session := pendingSession(userID)
	session.Status = domain.SessionStatusCompleted
	return session
}

func TestAskGuruAnswersAgainstLatestReport(t *testing.T) {
	userID := uuid.New()
	h := newTestHarness()
	h.generator.reply = "Focus on what you can control."
	session := completedSession(userID)
	h.sessions.sessions[session.ID] = session

	answer, err := h.svc.AskGuru(context.Background(), userID, "What about my career?")
	require.NoError(t, err)

	assert.Equal(t, "What about my career?", answer.Question)
	assert.Equal(t, "Focus on what you can control.", answer.Answer)
	assert.Equal(t, 1, h.credits.guruConsumed)
	require.Len(t, h.guru.created, 1)
}

func TestAskGuruRequiresQuestion(t *testing.T) {
	h := newTestHarness()

	_, err := h.svc.AskGuru(context.Background(), uuid.New(), "")
	require.Error(t, err)
	assert.True(t, domain.IsBusinessError(err))
}

func TestAskGuruRequiresCompletedReport(t *testing.T) {
	userID := uuid.New()
	h := newTestHarness()
	h.sessions.sessions[uuid.New()] = pendingSession(userID)

	_, err := h.svc.AskGuru(context.Background(), userID, "Anything?")
	require.Error(t, err)
	assert.True(t, domain.IsBusinessError(err))
	assert.Zero(t, h.credits.guruConsumed)
}

func TestAskGuruStopsAtQuota(t *testing.T) {
	userID := uuid.New()
	h := newTestHarness()
	h.credits.guruErr = domain.ErrQuotaExceeded
	session := completedSession(userID)
	h.sessions.sessions[session.ID] = session

	_, err := h.svc.AskGuru(context.Background(), userID, "One more?")
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
	// quota is checked before the generator is called
	assert.Zero(t, h.generator.calls)
}

func TestAskGuruRefundsCreditOnGeneratorFailure(t *testing.T) {
	userID := uuid.New()
	h := newTestHarness()
	h.generator.err = &domain.GenerationError{Err: errors.New("model unavailable")}
	session := completedSession(userID)
	h.sessions.sessions[session.ID] = session

	_, err := h.svc.AskGuru(context.Background(), userID, "What about my career?")
	require.Error(t, err)

	// a failed generation hands the credit back
	assert.Zero(t, h.credits.guruConsumed)
	assert.Equal(t, 1, h.credits.guruRefunded)
	assert.Empty(t, h.guru.created)
}

func TestAskGuruConcurrentSpendsCapAtLimit(t *testing.T) {
	userID := uuid.New()
	h := newTestHarness()
	h.generator.reply = "Patience."
	session := completedSession(userID)
	h.sessions.sessions[session.ID] = session

	const attempts = 25
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.svc.AskGuru(context.Background(), userID, "One more?")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var answered, rejected int
	for err := range errs {
		if err == nil {
			answered++
			continue
		}
		require.ErrorIs(t, err, domain.ErrQuotaExceeded)
		rejected++
	}

	assert.Equal(t, h.svc.GuruQuestionLimit, answered)
	assert.Equal(t, attempts-h.svc.GuruQuestionLimit, rejected)
	assert.Equal(t, h.svc.GuruQuestionLimit, h.credits.guruConsumed)
	assert.Len(t, h.guru.created, h.svc.GuruQuestionLimit)
}

func TestCreateCompatibilityConsumesSingleCredit(t *testing.T) {
	userID := uuid.New()
	h := newTestHarness()
	h.generator.reply = "## Compatibility\ngreat match\n## Compatibility\ngreat match"
	session := completedSession(userID)
	h.sessions.sessions[session.ID] = session

	reading, err := h.svc.CreateCompatibility(context.Background(), userID, domain.BirthInput{
		FullName:  "Joao Souza",
		BirthDate: "1988-03-02",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, h.credits.compatibilityUse)
	// repeated sections in the generator reply are collapsed
	assert.Equal(t, "## Compatibility\ngreat match", reading.ResultText)
	require.Len(t, h.compat.created, 1)
}

func TestCreateCompatibilityAlreadyUsed(t *testing.T) {
	userID := uuid.New()
	h := newTestHarness()
	h.credits.compatibilityErr = domain.ErrQuotaExceeded
	session := completedSession(userID)
	h.sessions.sessions[session.ID] = session

	_, err := h.svc.CreateCompatibility(context.Background(), userID, domain.BirthInput{
		FullName:  "Joao Souza",
		BirthDate: "1988-03-02",
	})
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
	assert.Zero(t, h.generator.calls)
}

func TestCreateCompatibilityValidatesTarget(t *testing.T) {
	h := newTestHarness()

	_, err := h.svc.CreateCompatibility(context.Background(), uuid.New(), domain.BirthInput{
		FullName:  "",
		BirthDate: "1988-03-02",
	})
	require.Error(t, err)
	assert.True(t, domain.IsBusinessError(err))
}
