package impl

import (
	"context"
	"fmt"
	"log/slog"

	"wellclub/config"
	"wellclub/internal/domain/entity"
	"wellclub/internal/domain/repository"
	"wellclub/internal/domain/service"
	"wellclub/internal/errors"
	"wellclub/internal/usecase"

	"github.com/google/uuid"
)

type contactService struct {
	contactRepo repository.ContactRepository
	mailService service.MailService
	clubInbox   string
	logger      *slog.Logger
}

// NewContactService creates a new contact form service instance.
func NewContactService(
	contactRepo repository.ContactRepository,
	mailService service.MailService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ContactUsecase {
	inbox := ""
	if cfg.SMTP != nil {
		inbox = cfg.SMTP.ClubInbox
	}

	return &contactService{
		contactRepo: contactRepo,
		mailService: mailService,
		clubInbox:   inbox,
		logger:      logger,
	}
}

// SubmitContact stores a submission and notifies the club mailbox.
func (s *contactService) SubmitContact(ctx context.Context, input usecase.ContactInput) (*entity.ContactRequest, error) {
	contact := &entity.ContactRequest{
		ID:      uuid.New(),
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	}
	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, errors.Wrap(err, "failed to store contact request")
	}

	if s.clubInbox != "" {
		body := fmt.Sprintf(
			"New contact request from %s <%s>\nPhone: %s\n\n%s\n",
			contact.Name, contact.Email, contact.Phone, contact.Message,
		)
		if err := s.mailService.Send(ctx, s.clubInbox, "New contact request", body); err != nil {
			// Notification is best effort; the submission is already stored.
			s.logger.Warn("contact notification mail failed", slog.Any("error", err))
		}
	}

	s.logger.Info("contact request submitted", slog.String("contact_id", contact.ID.String()))

	return contact, nil
}

// ListContacts lists all submissions. Admin only.
func (s *contactService) ListContacts(ctx context.Context) ([]*entity.ContactRequest, error) {
	contacts, err := s.contactRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contact requests")
	}

	return contacts, nil
}
