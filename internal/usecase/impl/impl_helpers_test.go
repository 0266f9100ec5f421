package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"wellclub/internal/domain/entity"
	"wellclub/internal/domain/repository"
	mockRepo "wellclub/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// newTestLogger returns a logger that discards everything.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newPrimaryMembership builds an active primary membership valid for a year.
func newPrimaryMembership(id string, userID uuid.UUID) *entity.Membership {
	now := time.Now()

	return &entity.Membership{
		ID:        id,
		UserID:    userID,
		PlanID:    uuid.New(),
		StartDate: now.AddDate(0, -1, 0),
		EndDate:   now.AddDate(1, 0, 0),
		IsActive:  true,
		IsPrimary: true,
	}
}

// newBeneficiaryMembership builds an active beneficiary under the given primary.
func newBeneficiaryMembership(id, parentID string, userID uuid.UUID) *entity.Membership {
	m := newPrimaryMembership(id, userID)
	m.IsPrimary = false
	m.ParentMembershipID = &parentID

	return m
}

// expectTransaction wires the transaction manager mock to run the callback
// against a factory serving the given membership repository.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, membershipRepo *mockRepo.MockMembershipRepository) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewMembershipRepository().Return(membershipRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Maybe()
}
