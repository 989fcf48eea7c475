package stripe

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"log/slog"

	"github.com/AndreaVaz0608/skyai/internal/domain"
)

// Verifier checks webhook signatures in the t=<unix>,v1=<hex> header scheme.
// The signed payload is "<t>.<raw body>" under HMAC-SHA256 with the webhook
// secret.
type Verifier struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
	log       *slog.Logger
}

// NewVerifier creates a signature verifier
func NewVerifier(cfg *Config, log *slog.Logger) *Verifier {
	tolerance := time.Duration(cfg.ToleranceSeconds) * time.Second
	if tolerance <= 0 {
		tolerance = 5 * time.Minute
	}

	return &Verifier{
		secret:    []byte(cfg.WebhookSecret),
		tolerance: tolerance,
		now:       time.Now,
		log:       log,
	}
}

// Verify validates the header against the raw request body
func (v *Verifier) Verify(body []byte, header string) error {
	timestamp, signatures, err := parseSignatureHeader(header)
	if err != nil {
		v.log.Debug("malformed signature header", "error", err)
		return domain.ErrInvalidSignature
	}

	age := v.now().Sub(time.Unix(timestamp, 0))
	if age > v.tolerance || age < -v.tolerance {
		v.log.Debug("signature timestamp outside tolerance",
			"timestamp", timestamp,
			"age_seconds", age.Seconds(),
		)
		return domain.ErrInvalidSignature
	}

	expected := computeSignature(v.secret, timestamp, body)
	for _, signature := range signatures {
		if hmac.Equal([]byte(signature), []byte(expected)) {
			return nil
		}
	}

	v.log.Debug("signature mismatch", "timestamp", timestamp)
	return domain.ErrInvalidSignature
}

// parseSignatureHeader splits "t=1700000000,v1=abc..." into parts.
// Multiple v1 entries are allowed during secret rotation.
func parseSignatureHeader(header string) (int64, []string, error) {
	var timestamp int64
	var signatures []string
	var haveTimestamp bool

	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			return 0, nil, domain.ErrInvalidSignature
		}

		switch key {
		case "t":
			parsed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, nil, domain.ErrInvalidSignature
			}
			timestamp = parsed
			haveTimestamp = true
		case "v1":
			signatures = append(signatures, value)
		}
	}

	if !haveTimestamp || len(signatures) == 0 {
		return 0, nil, domain.ErrInvalidSignature
	}

	return timestamp, signatures, nil
}

// computeSignature returns hex(HMAC-SHA256(secret, "<t>.<body>"))
func computeSignature(secret []byte, timestamp int64, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
