package domain

import (
	"errors"
	"fmt"
)

// BusinessError marks failures caused by input or state rather than by
// infrastructure. Consumers treat these as non-retryable.
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string {
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError wraps err as non-retryable.
func NewBusinessError(err error) *BusinessError {
	return &BusinessError{Err: err}
}

// IsBusinessError reports whether err is non-retryable.
func IsBusinessError(err error) bool {
	var be *BusinessError
	return errors.As(err, &be)
}

// ValidationError reports a malformed or missing request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: field %q %s", e.Field, e.Reason)
}

// GeocodingError means the birth place could not be resolved to coordinates.
type GeocodingError struct {
	City    string
	Country string
	Err     error
}

func (e *GeocodingError) Error() string {
	return fmt.Sprintf("geocoding %q, %q: %v", e.City, e.Country, e.Err)
}

func (e *GeocodingError) Unwrap() error {
	return e.Err
}

// TimeZoneResolutionError means the zone lookup for a coordinate pair
// failed. Recoverable: callers fall back to a configured default zone.
type TimeZoneResolutionError struct {
	Latitude  float64
	Longitude float64
	Err       error
}

func (e *TimeZoneResolutionError) Error() string {
	return fmt.Sprintf("timezone resolution (%f, %f): %v", e.Latitude, e.Longitude, e.Err)
}

func (e *TimeZoneResolutionError) Unwrap() error {
	return e.Err
}

// EphemerisError means a planetary position could not be computed.
type EphemerisError struct {
	Body Body
	Err  error
}

func (e *EphemerisError) Error() string {
	return fmt.Sprintf("ephemeris %s: %v", e.Body, e.Err)
}

func (e *EphemerisError) Unwrap() error {
	return e.Err
}

// GenerationError means the narrative generator call failed outright.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation: %v", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// ResponseParseError means the generator reply survived no repair step and
// could not be interpreted even as raw text.
type ResponseParseError struct {
	Reason string
}

func (e *ResponseParseError) Error() string {
	return "response parse: " + e.Reason
}

// PaymentRejectedError is returned to the webhook caller when an event is
// well-formed but unprocessable (no e-mail, unknown user). The transport
// layer maps it to a client error so the sender does not retry.
type PaymentRejectedError struct {
	Reason string
}

func (e *PaymentRejectedError) Error() string {
	return "payment rejected: " + e.Reason
}

var (
	// ErrNotFound is the adapter-agnostic missing row error.
	ErrNotFound = errors.New("not found")

	// ErrQuotaExceeded means the user spent the feature quota for the
	// current payment cycle.
	ErrQuotaExceeded = errors.New("quota exceeded")

	// ErrSessionTaken means another worker won the processing claim.
	ErrSessionTaken = errors.New("session already claimed")

	// ErrPaymentRequired means the user has no confirmed payment on file
	// and may not open a report session.
	ErrPaymentRequired = errors.New("payment required")

	// ErrInvalidSignature means the webhook signature header failed
	// verification.
	ErrInvalidSignature = errors.New("invalid webhook signature")
)
