package impl

import (
	"context"
	"testing"

	"wellclub/config"
	"wellclub/internal/domain/entity"
	mockRepo "wellclub/internal/mocks/repository"
	mockSvc "wellclub/internal/mocks/service"
	"wellclub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func contactConfig(inbox string) *config.Config {
	cfg := &config.Config{}
	cfg.SMTP = &config.SMTPConfig{ClubInbox: inbox}

	return cfg
}

func TestContactService_SubmitContact_NotifiesClubInbox(t *testing.T) {
	mockContactRepo := mockRepo.NewMockContactRepository(t)
	mockMail := mockSvc.NewMockMailService(t)
	service := NewContactService(mockContactRepo, mockMail, contactConfig("frontdesk@example.com"), newTestLogger())

	ctx := context.Background()

	mockContactRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ContactRequest")).Return(nil)
	mockMail.EXPECT().Send(ctx, "frontdesk@example.com", "New contact request", mock.AnythingOfType("string")).Return(nil)

	contact, err := service.SubmitContact(ctx, usecase.ContactInput{
		Name:    "Curious Visitor",
		Email:   "visitor@example.com",
		Message: "Do you have day passes?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Curious Visitor", contact.Name)
}

func TestContactService_SubmitContact_MailFailureStillStores(t *testing.T) {
	mockContactRepo := mockRepo.NewMockContactRepository(t)
	mockMail := mockSvc.NewMockMailService(t)
	service := NewContactService(mockContactRepo, mockMail, contactConfig("frontdesk@example.com"), newTestLogger())

	ctx := context.Background()

	mockContactRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ContactRequest")).Return(nil)
	mockMail.EXPECT().Send(ctx, "frontdesk@example.com", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	contact, err := service.SubmitContact(ctx, usecase.ContactInput{Name: "Visitor", Email: "v@example.com", Message: "hi"})
	require.NoError(t, err)
	assert.NotNil(t, contact)
}

func TestContactService_SubmitContact_NoInboxConfigured(t *testing.T) {
	mockContactRepo := mockRepo.NewMockContactRepository(t)
	mockMail := mockSvc.NewMockMailService(t)
	service := NewContactService(mockContactRepo, mockMail, contactConfig(""), newTestLogger())

	ctx := context.Background()
	mockContactRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ContactRequest")).Return(nil)

	// No mail is attempted when no inbox is configured.
	contact, err := service.SubmitContact(ctx, usecase.ContactInput{Name: "Visitor", Email: "v@example.com", Message: "hi"})
	require.NoError(t, err)
	assert.NotNil(t, contact)
}

func TestContactService_ListContacts(t *testing.T) {
	mockContactRepo := mockRepo.NewMockContactRepository(t)
	mockMail := mockSvc.NewMockMailService(t)
	service := NewContactService(mockContactRepo, mockMail, contactConfig(""), newTestLogger())

	ctx := context.Background()
	contacts := []*entity.ContactRequest{{Name: "A"}, {Name: "B"}}

	mockContactRepo.EXPECT().FindAll(ctx).Return(contacts, nil)

	got, err := service.ListContacts(ctx)
	require.NoError(t, err)
	assert.Equal(t, contacts, got)
}
