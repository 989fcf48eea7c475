package domain

import (
	"fmt"
	"strings"
	"time"
)

// Accepted birth date formats, tried in order.
var birthDateFormats = []string{"2006-01-02", "02/01/2006"}

// Accepted birth time formats, tried in order.
var birthTimeFormats = []string{"15:04:05", "15:04"}

// BirthInput is the user-submitted birth data a report session is created
// from. Immutable once a session row exists.
type BirthInput struct {
	FullName     string `json:"full_name"`
	BirthDate    string `json:"birth_date"`
	BirthTime    string `json:"birth_time"`
	BirthCity    string `json:"birth_city"`
	BirthCountry string `json:"birth_country"`
}

// Validate checks all fields are present and the date/time parse.
func (b BirthInput) Validate() error {
	if strings.TrimSpace(b.FullName) == "" {
		return &ValidationError{Field: "full_name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(b.BirthCity) == "" {
		return &ValidationError{Field: "birth_city", Reason: "must not be empty"}
	}
	if strings.TrimSpace(b.BirthCountry) == "" {
		return &ValidationError{Field: "birth_country", Reason: "must not be empty"}
	}
	if _, err := b.BirthDateISO(); err != nil {
		return err
	}
	if _, err := ParseBirthTime(b.BirthTime); err != nil {
		return err
	}
	return nil
}

// BirthDateISO normalizes the birth date to YYYY-MM-DD.
// Accepts YYYY-MM-DD and DD/MM/YYYY.
func (b BirthInput) BirthDateISO() (string, error) {
	return ParseBirthDate(b.BirthDate)
}

// ParseBirthDate normalizes a date string to ISO form.
func ParseBirthDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", &ValidationError{Field: "birth_date", Reason: "must not be empty"}
	}
	for _, layout := range birthDateFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", &ValidationError{
		Field:  "birth_date",
		Reason: fmt.Sprintf("%q is not in a recognized format (YYYY-MM-DD or DD/MM/YYYY)", raw),
	}
}

// ParseBirthTime parses HH:MM or HH:MM:SS into a clock offset from midnight.
func ParseBirthTime(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range birthTimeFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, &ValidationError{
		Field:  "birth_time",
		Reason: fmt.Sprintf("%q is not in a recognized format (HH:MM or HH:MM:SS)", raw),
	}
}
