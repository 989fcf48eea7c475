package report

import (
	"context"
	"errors"
	"testing"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestProcessSessionCompletesStructured(t *testing.T) {
	h := newTestHarness()
	session := pendingSession(uuid.New())
	h.sessions.sessions[session.ID] = session

	err := h.svc.ProcessSession(context.Background(), session.ID)
	require.NoError(t, err)

	result, ok := h.sessions.completed[session.ID]
	require.True(t, ok, "session should be completed")

	// structured columns come from the computed chart, not the generator echo
	require.NotNil(t, result.SunSign)
	assert.Equal(t, "Aries", *result.SunSign)
	require.NotNil(t, result.MoonSign)
	assert.Equal(t, "Taurus", *result.MoonSign)
	require.NotNil(t, result.Ascendant)
	assert.Equal(t, "Virgo", *result.Ascendant)
	require.NotNil(t, result.LifePath)
	assert.Equal(t, 7, *result.LifePath)
	assert.Contains(t, result.Narrative, "## Who You Are")
}

func TestProcessSessionRawFallbackLeavesColumnsEmpty(t *testing.T) {
	h := newTestHarness()
	h.generator.reply = "no json here, just vibes"
	session := pendingSession(uuid.New())
	h.sessions.sessions[session.ID] = session

	err := h.svc.ProcessSession(context.Background(), session.ID)
	require.NoError(t, err)

	result, ok := h.sessions.completed[session.ID]
	require.True(t, ok, "raw fallback still completes the session")
	assert.Nil(t, result.SunSign)
	assert.Nil(t, result.LifePath)
	assert.Equal(t, "no json here, just vibes", result.Narrative)
}

func TestProcessSessionSkipsTerminal(t *testing.T) {
	h := newTestHarness()
	session := pendingSession(uuid.New())
	session.Status = domain.SessionStatusCompleted
	h.sessions.sessions[session.ID] = session

	err := h.svc.ProcessSession(context.Background(), session.ID)
	require.NoError(t, err)

	assert.Empty(t, h.sessions.marked)
	assert.Zero(t, h.generator.calls)
}

func TestProcessSessionClaimLostIsNotAnError(t *testing.T) {
	h := newTestHarness()
	session := pendingSession(uuid.New())
	h.sessions.sessions[session.ID] = session
	h.sessions.markErr = domain.ErrSessionTaken

	err := h.svc.ProcessSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Zero(t, h.generator.calls)
}

func TestProcessSessionConcurrentClaimsRunOnce(t *testing.T) {
	h := newTestHarness()
	session := pendingSession(uuid.New())
	h.sessions.sessions[session.ID] = session

	// every racer either wins the claim or observes it and returns nil
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			return h.svc.ProcessSession(context.Background(), session.ID)
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, 1, h.generator.callCount(), "exactly one racer generates")
	assert.Len(t, h.sessions.marked, 1)
	_, completed := h.sessions.completed[session.ID]
	assert.True(t, completed)
}

func TestProcessSessionFailsOnGeneratorError(t *testing.T) {
	h := newTestHarness()
	h.generator.err = &domain.GenerationError{Err: errors.New("model unavailable")}
	session := pendingSession(uuid.New())
	h.sessions.sessions[session.ID] = session

	err := h.svc.ProcessSession(context.Background(), session.ID)
	require.Error(t, err)

	reason, ok := h.sessions.failed[session.ID]
	require.True(t, ok, "session should be failed")
	assert.Contains(t, reason, "model unavailable")
}

func TestProcessSessionFailsOnBadBirthData(t *testing.T) {
	h := newTestHarness()
	session := pendingSession(uuid.New())
	session.BirthDate = "not a date"
	h.sessions.sessions[session.ID] = session

	err := h.svc.ProcessSession(context.Background(), session.ID)
	require.Error(t, err)
	assert.True(t, domain.IsBusinessError(err))

	_, failed := h.sessions.failed[session.ID]
	assert.True(t, failed)
}

func TestCreateSessionRejectsInvalidInput(t *testing.T) {
	userID := uuid.New()
	h := newTestHarness(&domain.User{ID: userID, Email: "maria@example.com"})

	_, err := h.svc.CreateSession(context.Background(), userID, domain.BirthInput{
		FullName:  "",
		BirthDate: "1990-05-10",
		BirthTime: "14:30",
	})
	require.Error(t, err)
	assert.True(t, domain.IsBusinessError(err))
	assert.Empty(t, h.dispatcher.dispatched)
}

func TestCreateSessionRequiresPayment(t *testing.T) {
	userID := uuid.New()
	h := newTestHarness(&domain.User{ID: userID, Email: "maria@example.com"})
	h.payments.paid[userID] = false

	_, err := h.svc.CreateSession(context.Background(), userID, domain.BirthInput{
		FullName:     "Maria Silva",
		BirthDate:    "1990-05-10",
		BirthTime:    "14:30",
		BirthCity:    "Sao Paulo",
		BirthCountry: "Brazil",
	})
	require.ErrorIs(t, err, domain.ErrPaymentRequired)
	assert.Empty(t, h.sessions.sessions)
	assert.Empty(t, h.dispatcher.dispatched)
}

func TestCreateSessionDispatchesJob(t *testing.T) {
	userID := uuid.New()
	h := newTestHarness(&domain.User{ID: userID, Email: "maria@example.com"})

	session, err := h.svc.CreateSession(context.Background(), userID, domain.BirthInput{
		FullName:     "Maria Silva",
		BirthDate:    "1990-05-10",
		BirthTime:    "14:30",
		BirthCity:    "Sao Paulo",
		BirthCountry: "Brazil",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SessionStatusPending, session.Status)
	require.Len(t, h.dispatcher.dispatched, 1)
	assert.Equal(t, session.ID, h.dispatcher.dispatched[0])
}

func TestCreateSessionKeepsSessionOnDispatchFailure(t *testing.T) {
	userID := uuid.New()
	h := newTestHarness(&domain.User{ID: userID, Email: "maria@example.com"})
	h.dispatcher.err = errors.New("broker down")

	session, err := h.svc.CreateSession(context.Background(), userID, domain.BirthInput{
		FullName:     "Maria Silva",
		BirthDate:    "1990-05-10",
		BirthTime:    "14:30",
		BirthCity:    "Sao Paulo",
		BirthCountry: "Brazil",
	})
	require.Error(t, err)
	require.NotNil(t, session, "the pending session survives a dispatch failure")
	_, stored := h.sessions.sessions[session.ID]
	assert.True(t, stored)
}

func TestGetSessionScopedToOwner(t *testing.T) {
	h := newTestHarness()
	owner := uuid.New()
	session := pendingSession(owner)
	h.sessions.sessions[session.ID] = session

	got, err := h.svc.GetSession(context.Background(), owner, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	_, err = h.svc.GetSession(context.Background(), uuid.New(), session.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
