package domain

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus is the report session lifecycle state.
// pending → processing → {completed, failed}; terminal states never change.
type SessionStatus string

const (
	SessionStatusPending    SessionStatus = "pending"
	SessionStatusProcessing SessionStatus = "processing"
	SessionStatusCompleted  SessionStatus = "completed"
	SessionStatusFailed     SessionStatus = "failed"
)

// IsTerminal reports whether no further transition is allowed.
func (s SessionStatus) IsTerminal() bool {
	return s == SessionStatusCompleted || s == SessionStatusFailed
}

// ReportSession is one paid report request and its outcome. Mutated only by
// the single background unit of work that wins the pending→processing
// compare-and-set; re-generation requires a new session.
type ReportSession struct {
	ID     uuid.UUID     `json:"id" db:"id"`
	UserID uuid.UUID     `json:"user_id" db:"user_id"`
	Status SessionStatus `json:"status" db:"status"`

	FullName     string `json:"full_name" db:"full_name"`
	BirthDate    string `json:"birth_date" db:"birth_date"`
	BirthTime    string `json:"birth_time" db:"birth_time"`
	BirthCity    string `json:"birth_city" db:"birth_city"`
	BirthCountry string `json:"birth_country" db:"birth_country"`

	SunSign    *string `json:"sun_sign,omitempty" db:"sun_sign"`
	MoonSign   *string `json:"moon_sign,omitempty" db:"moon_sign"`
	Ascendant  *string `json:"ascendant,omitempty" db:"ascendant"`
	LifePath   *int    `json:"life_path,omitempty" db:"life_path"`
	SoulUrge   *int    `json:"soul_urge,omitempty" db:"soul_urge"`
	Expression *int    `json:"expression,omitempty" db:"expression"`

	Narrative   *string `json:"narrative,omitempty" db:"narrative"`
	ErrorReason *string `json:"error_reason,omitempty" db:"error_reason"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Birth returns the immutable birth input stored on the session row.
func (s *ReportSession) Birth() BirthInput {
	return BirthInput{
		FullName:     s.FullName,
		BirthDate:    s.BirthDate,
		BirthTime:    s.BirthTime,
		BirthCity:    s.BirthCity,
		BirthCountry: s.BirthCountry,
	}
}

// SessionResult carries the computed values persisted when a session
// completes. Structured fields stay nil when the generator reply could not
// be parsed and only the raw narrative was salvaged.
type SessionResult struct {
	SunSign    *string
	MoonSign   *string
	Ascendant  *string
	LifePath   *int
	SoulUrge   *int
	Expression *int
	Narrative  string
}

// GuruQuestion is one paid-quota question answered by the generator.
type GuruQuestion struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Question  string    `json:"question" db:"question"`
	Answer    string    `json:"answer" db:"answer"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CompatibilityReading is the one-per-payment love compatibility result.
type CompatibilityReading struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	UserID             uuid.UUID `json:"user_id" db:"user_id"`
	TargetName         string    `json:"target_name" db:"target_name"`
	TargetBirthDate    string    `json:"target_birth_date" db:"target_birth_date"`
	TargetBirthTime    string    `json:"target_birth_time" db:"target_birth_time"`
	TargetBirthCity    string    `json:"target_birth_city" db:"target_birth_city"`
	TargetBirthCountry string    `json:"target_birth_country" db:"target_birth_country"`
	ResultText         string    `json:"result_text" db:"result_text"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}
