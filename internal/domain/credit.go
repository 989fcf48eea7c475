package domain

import (
	"time"

	"github.com/google/uuid"
)

// CreditLedger tracks per-user feature usage since the last accepted
// payment. guru_questions_used never exceeds the configured limit;
// compatibility_used is monotonic true until the next reset. A reset happens
// only when a new payment is accepted.
type CreditLedger struct {
	UserID            uuid.UUID `json:"user_id" db:"user_id"`
	GuruQuestionsUsed int       `json:"guru_questions_used" db:"guru_questions_used"`
	CompatibilityUsed bool      `json:"compatibility_used" db:"compatibility_used"`
	LastReset         time.Time `json:"last_reset" db:"last_reset"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}
