package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// Name of the header Storyblok uses to deliver the signature
const SignatureHeader = "webhook-signature"

var (
	// ErrInvalidConfiguration is returned when a verifier is created without a secret.
	ErrInvalidConfiguration = errors.New("webhook secret cannot be empty")
	// ErrMissingSignature means the request did not carry a signature.
	ErrMissingSignature = errors.New("missing webhook signature")
	// ErrSignatureMismatch means the signature does not match the payload.
	ErrSignatureMismatch = errors.New("webhook signature mismatch")
	// ErrMalformedPayload means a verified payload could not be decoded.
	ErrMalformedPayload = errors.New("malformed webhook payload")
)

// Verifier checks the HMAC-SHA256 signature of Storyblok webhook deliveries.
// It holds no mutable state and is safe for concurrent use.
type Verifier struct {
	secret []byte
}

// Create a new verifier for the given shared secret
func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, ErrInvalidConfiguration
	}
	return &Verifier{
		secret: []byte(secret),
	}, nil
}

// Return the lowercase hex encoded HMAC-SHA256 of the payload
func (v *Verifier) Sign(payload []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	// hash.Hash never returns an error on write
	_, _ = mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Check the signature against the payload.
// Returns ErrMissingSignature or ErrSignatureMismatch on failure.
func (v *Verifier) Check(payload []byte, signature string) error {
	if signature == "" {
		return ErrMissingSignature
	}
	if !hmac.Equal([]byte(v.Sign(payload)), []byte(signature)) {
		return ErrSignatureMismatch
	}
	return nil
}

// Verify returns true if the signature is valid for the payload
func (v *Verifier) Verify(payload []byte, signature string) bool {
	return v.Check(payload, signature) == nil
}
