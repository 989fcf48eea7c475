package service

// ISignatureVerifier checks a webhook signature header against the raw body.
type ISignatureVerifier interface {
	// Verify returns domain.ErrInvalidSignature when header does not match
	// body or the timestamp is outside tolerance.
	Verify(body []byte, header string) error
}
