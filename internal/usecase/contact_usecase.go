package usecase

import (
	"context"

	"wellclub/internal/domain/entity"
)

// ContactInput carries a public contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ContactUsecase defines the contact/interest form use cases.
type ContactUsecase interface {
	// SubmitContact stores a submission and notifies the club mailbox.
	SubmitContact(ctx context.Context, input ContactInput) (*entity.ContactRequest, error)

	// ListContacts lists all submissions. Admin only.
	ListContacts(ctx context.Context) ([]*entity.ContactRequest, error)
}
