package service

import "context"

// MailService defines the interface for outbound email. The attendance core
// never sends mail itself; use cases hand it OTPs and confirmations.
type MailService interface {
	// Send delivers a plain-text message to a single recipient.
	Send(ctx context.Context, to, subject, body string) error
}
