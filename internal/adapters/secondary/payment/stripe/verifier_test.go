package stripe

import (
	"fmt"
	"io"
	"testing"
	"time"

	"log/slog"

	"github.com/AndreaVaz0608/skyai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVerifier(secret string, now time.Time) *Verifier {
	v := NewVerifier(&Config{
		WebhookSecret:    secret,
		ToleranceSeconds: 300,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	v.now = func() time.Time { return now }
	return v
}

func signedHeader(secret string, timestamp int64, body []byte) string {
	return fmt.Sprintf("t=%d,v1=%s", timestamp, computeSignature([]byte(secret), timestamp, body))
}

func TestVerifyAcceptsValidSignature(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := newTestVerifier("whsec_test", now)
	body := []byte(`{"event_type":"checkout.session.completed"}`)

	header := signedHeader("whsec_test", now.Unix(), body)
	assert.NoError(t, v.Verify(body, header))
}

func TestVerifyRejectsTamperedBody(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := newTestVerifier("whsec_test", now)

	header := signedHeader("whsec_test", now.Unix(), []byte(`{"amount":100}`))
	err := v.Verify([]byte(`{"amount":99999}`), header)
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := newTestVerifier("whsec_test", now)
	body := []byte(`{}`)

	header := signedHeader("whsec_other", now.Unix(), body)
	err := v.Verify(body, header)
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestVerifyRejectsStaleTimestamp(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := newTestVerifier("whsec_test", now)
	body := []byte(`{}`)

	stale := now.Add(-6 * time.Minute).Unix()
	err := v.Verify(body, signedHeader("whsec_test", stale, body))
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)

	future := now.Add(6 * time.Minute).Unix()
	err = v.Verify(body, signedHeader("whsec_test", future, body))
	assert.ErrorIs(t, err, domain.ErrInvalidSignature)
}

func TestVerifyAcceptsTimestampWithinTolerance(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := newTestVerifier("whsec_test", now)
	body := []byte(`{}`)

	recent := now.Add(-4 * time.Minute).Unix()
	assert.NoError(t, v.Verify(body, signedHeader("whsec_test", recent, body)))
}

func TestVerifyRejectsMalformedHeaders(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := newTestVerifier("whsec_test", now)
	body := []byte(`{}`)

	for _, header := range []string{
		"",
		"garbage",
		"t=not-a-number,v1=abc",
		"v1=abc",                // no timestamp
		"t=1700000000",          // no signature
		"t=1700000000,v2=wrong", // unknown scheme only
	} {
		err := v.Verify(body, header)
		assert.ErrorIs(t, err, domain.ErrInvalidSignature, "header %q", header)
	}
}

func TestVerifyAllowsSecretRotation(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := newTestVerifier("whsec_new", now)
	body := []byte(`{}`)

	// during rotation the provider sends signatures for both secrets
	oldSig := computeSignature([]byte("whsec_old"), now.Unix(), body)
	newSig := computeSignature([]byte("whsec_new"), now.Unix(), body)
	header := fmt.Sprintf("t=%d,v1=%s,v1=%s", now.Unix(), oldSig, newSig)

	require.NoError(t, v.Verify(body, header))
}
