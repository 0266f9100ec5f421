package service

import "context"

// OTPService defines the interface for short-lived one-time codes used
// during beneficiary enrollment. Codes live in a TTL cache keyed by
// purpose + contact identifier; they are never persisted.
type OTPService interface {
	// Issue generates a fresh code for the key and stores it with the
	// configured TTL, replacing any earlier code for the same key.
	Issue(ctx context.Context, key string) (string, error)

	// Verify checks the code against the stored value. A successful
	// verification consumes the code.
	Verify(ctx context.Context, key, code string) bool
}
