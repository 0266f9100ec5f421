package impl

import (
	"context"
	"testing"

	"wellclub/internal/domain/entity"
	domainerrors "wellclub/internal/domain/errors"
	"wellclub/internal/domain/repository"
	mockRepo "wellclub/internal/mocks/repository"
	"wellclub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRFIDService_AssignCard_PrimaryMembership(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := NewRFIDService(mockUserRepo, mockMembershipRepo, mockTx, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "owner@example.com", Name: "Owner"}
	primary := newPrimaryMembership("WC-2026-AAAA1111", userID)

	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mockMembershipRepo.EXPECT().FindActiveByUser(ctx, userID).Return(primary, nil)
	mockMembershipRepo.EXPECT().ClearCardID(ctx, "CARD-001").Return(nil)
	mockMembershipRepo.EXPECT().SetCardID(ctx, primary.ID, "CARD-001").Return(nil)
	expectTransaction(t, mockTx, mockMembershipRepo)

	result, err := service.AssignCard(ctx, usecase.Identity{UserID: &userID}, "CARD-001")
	require.NoError(t, err)
	assert.Equal(t, primary.ID, result.MembershipID)
	assert.Equal(t, "CARD-001", result.CardID)
}

func TestRFIDService_AssignCard_BeneficiaryResolvesToParent(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := NewRFIDService(mockUserRepo, mockMembershipRepo, mockTx, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	parentUserID := uuid.New()
	user := &entity.User{ID: userID, Email: "child@example.com"}
	primary := newPrimaryMembership("WC-2026-AAAA1111", parentUserID)
	beneficiary := newBeneficiaryMembership("WC-2026-BBBB2222", primary.ID, userID)

	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mockMembershipRepo.EXPECT().FindActiveByUser(ctx, userID).Return(beneficiary, nil)
	mockMembershipRepo.EXPECT().FindByID(ctx, primary.ID).Return(primary, nil)
	mockMembershipRepo.EXPECT().ClearCardID(ctx, "CARD-001").Return(nil)
	mockMembershipRepo.EXPECT().SetCardID(ctx, primary.ID, "CARD-001").Return(nil)
	expectTransaction(t, mockTx, mockMembershipRepo)

	result, err := service.AssignCard(ctx, usecase.Identity{UserID: &userID}, "CARD-001")
	require.NoError(t, err)
	// The card lands on the group's primary, not on the beneficiary record.
	assert.Equal(t, primary.ID, result.MembershipID)
}

func TestRFIDService_AssignCard_StandaloneIsOwnPrimary(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := NewRFIDService(mockUserRepo, mockMembershipRepo, mockTx, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID}
	standalone := newPrimaryMembership("WC-2026-CCCC3333", userID)
	standalone.IsPrimary = false

	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mockMembershipRepo.EXPECT().FindActiveByUser(ctx, userID).Return(standalone, nil)
	mockMembershipRepo.EXPECT().ClearCardID(ctx, "CARD-009").Return(nil)
	mockMembershipRepo.EXPECT().SetCardID(ctx, standalone.ID, "CARD-009").Return(nil)
	expectTransaction(t, mockTx, mockMembershipRepo)

	result, err := service.AssignCard(ctx, usecase.Identity{UserID: &userID}, "CARD-009")
	require.NoError(t, err)
	assert.Equal(t, standalone.ID, result.MembershipID)
}

func TestRFIDService_AssignCard_MissingParent(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := NewRFIDService(mockUserRepo, mockMembershipRepo, mockTx, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID}
	beneficiary := newBeneficiaryMembership("WC-2026-BBBB2222", "WC-2026-GONE0000", userID)

	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mockMembershipRepo.EXPECT().FindActiveByUser(ctx, userID).Return(beneficiary, nil)
	mockMembershipRepo.EXPECT().FindByID(ctx, "WC-2026-GONE0000").Return(nil, repository.ErrMembershipNotFound)

	result, err := service.AssignCard(ctx, usecase.Identity{UserID: &userID}, "CARD-001")
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "MEMBERSHIP_NOT_FOUND", appErr.ErrorCode())
}

func TestRFIDService_AssignCard_EmptyCardID(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := NewRFIDService(mockUserRepo, mockMembershipRepo, mockTx, newTestLogger())

	userID := uuid.New()
	result, err := service.AssignCard(context.Background(), usecase.Identity{UserID: &userID}, "")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrCardIDRequired)
}

func TestRFIDService_AssignCard_NoIdentity(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := NewRFIDService(mockUserRepo, mockMembershipRepo, mockTx, newTestLogger())

	result, err := service.AssignCard(context.Background(), usecase.Identity{}, "CARD-001")
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestRFIDService_AssignCard_EmailFallback(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := NewRFIDService(mockUserRepo, mockMembershipRepo, mockTx, newTestLogger())

	ctx := context.Background()
	staleID := uuid.New()
	realID := uuid.New()
	user := &entity.User{ID: realID, Email: "member@example.com"}
	primary := newPrimaryMembership("WC-2026-AAAA1111", realID)

	// The id misses but the email still resolves.
	mockUserRepo.EXPECT().FindByID(ctx, staleID).Return(nil, repository.ErrUserNotFound)
	mockUserRepo.EXPECT().FindByEmail(ctx, "member@example.com").Return(user, nil)
	mockMembershipRepo.EXPECT().FindActiveByUser(ctx, realID).Return(primary, nil)
	mockMembershipRepo.EXPECT().ClearCardID(ctx, "CARD-001").Return(nil)
	mockMembershipRepo.EXPECT().SetCardID(ctx, primary.ID, "CARD-001").Return(nil)
	expectTransaction(t, mockTx, mockMembershipRepo)

	result, err := service.AssignCard(ctx, usecase.Identity{UserID: &staleID, Email: "member@example.com"}, "CARD-001")
	require.NoError(t, err)
	assert.Equal(t, primary.ID, result.MembershipID)
}

func TestRFIDService_AssignCard_NoActiveMembership(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := NewRFIDService(mockUserRepo, mockMembershipRepo, mockTx, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID}

	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mockMembershipRepo.EXPECT().FindActiveByUser(ctx, userID).Return(nil, repository.ErrMembershipNotFound)

	result, err := service.AssignCard(ctx, usecase.Identity{UserID: &userID}, "CARD-001")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveMembership)
}

func TestRFIDService_UnassignCard_Idempotent(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := NewRFIDService(mockUserRepo, mockMembershipRepo, mockTx, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID}
	primary := newPrimaryMembership("WC-2026-AAAA1111", userID)

	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mockMembershipRepo.EXPECT().FindActiveByUser(ctx, userID).Return(primary, nil)
	// No card is assigned; the removal still succeeds without error.
	mockMembershipRepo.EXPECT().RemoveCardID(ctx, primary.ID).Return(nil)

	result, err := service.UnassignCard(ctx, usecase.Identity{UserID: &userID})
	require.NoError(t, err)
	assert.Equal(t, primary.ID, result.MembershipID)
	assert.Empty(t, result.CardID)
}

func TestRFIDService_CheckAccess_Primary(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := NewRFIDService(mockUserRepo, mockMembershipRepo, mockTx, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	card := "CARD-001"
	holder := newPrimaryMembership("WC-2026-AAAA1111", userID)
	holder.RFIDCardID = &card

	mockMembershipRepo.EXPECT().FindByCardID(ctx, card).Return(holder, nil)
	mockMembershipRepo.EXPECT().FindActiveByUser(ctx, userID).Return(holder, nil)

	result, err := service.CheckAccess(ctx, userID, card)
	require.NoError(t, err)
	assert.True(t, result.HasAccess)
	assert.Equal(t, entity.AccessPrimary, result.AccessType)
}

func TestRFIDService_CheckAccess_Beneficiary(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := NewRFIDService(mockUserRepo, mockMembershipRepo, mockTx, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	holder := newPrimaryMembership("WC-2026-AAAA1111", uuid.New())
	beneficiary := newBeneficiaryMembership("WC-2026-BBBB2222", holder.ID, userID)

	mockMembershipRepo.EXPECT().FindByCardID(ctx, "CARD-001").Return(holder, nil)
	mockMembershipRepo.EXPECT().FindActiveByUser(ctx, userID).Return(beneficiary, nil)

	result, err := service.CheckAccess(ctx, userID, "CARD-001")
	require.NoError(t, err)
	assert.True(t, result.HasAccess)
	assert.Equal(t, entity.AccessBeneficiary, result.AccessType)
}

func TestRFIDService_CheckAccess_GroupBeneficiary(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := NewRFIDService(mockUserRepo, mockMembershipRepo, mockTx, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	primaryID := "WC-2026-AAAA1111"
	// The card sits on a sibling beneficiary, not on the primary.
	holder := newBeneficiaryMembership("WC-2026-BBBB2222", primaryID, uuid.New())
	sibling := newBeneficiaryMembership("WC-2026-CCCC3333", primaryID, userID)

	mockMembershipRepo.EXPECT().FindByCardID(ctx, "CARD-001").Return(holder, nil)
	mockMembershipRepo.EXPECT().FindActiveByUser(ctx, userID).Return(sibling, nil)

	result, err := service.CheckAccess(ctx, userID, "CARD-001")
	require.NoError(t, err)
	assert.True(t, result.HasAccess)
	assert.Equal(t, entity.AccessGroupBeneficiary, result.AccessType)
}

func TestRFIDService_CheckAccess_UnknownCardIsNegativeResult(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := NewRFIDService(mockUserRepo, mockMembershipRepo, mockTx, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()

	mockMembershipRepo.EXPECT().FindByCardID(ctx, "CARD-404").Return(nil, repository.ErrCardNotFound)

	result, err := service.CheckAccess(ctx, userID, "CARD-404")
	require.NoError(t, err)
	assert.False(t, result.HasAccess)
	assert.Equal(t, entity.AccessNone, result.AccessType)
	assert.NotEmpty(t, result.Message)
}

func TestRFIDService_CheckAccess_NoActiveMembershipIsNegativeResult(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := NewRFIDService(mockUserRepo, mockMembershipRepo, mockTx, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	holder := newPrimaryMembership("WC-2026-AAAA1111", uuid.New())

	mockMembershipRepo.EXPECT().FindByCardID(ctx, "CARD-001").Return(holder, nil)
	mockMembershipRepo.EXPECT().FindActiveByUser(ctx, userID).Return(nil, repository.ErrMembershipNotFound)

	result, err := service.CheckAccess(ctx, userID, "CARD-001")
	require.NoError(t, err)
	assert.False(t, result.HasAccess)
	assert.Equal(t, entity.AccessNone, result.AccessType)
	assert.Equal(t, holder.ID, result.CardMembershipID)
}

func TestRFIDService_CheckAccess_UnrelatedMembership(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := NewRFIDService(mockUserRepo, mockMembershipRepo, mockTx, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	holder := newPrimaryMembership("WC-2026-AAAA1111", uuid.New())
	other := newPrimaryMembership("WC-2026-ZZZZ9999", userID)

	mockMembershipRepo.EXPECT().FindByCardID(ctx, "CARD-001").Return(holder, nil)
	mockMembershipRepo.EXPECT().FindActiveByUser(ctx, userID).Return(other, nil)

	result, err := service.CheckAccess(ctx, userID, "CARD-001")
	require.NoError(t, err)
	assert.False(t, result.HasAccess)
	assert.Equal(t, entity.AccessNone, result.AccessType)
	assert.NotEmpty(t, result.Message)
}

func TestRFIDService_ListCardAccess_WholeGroup(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := NewRFIDService(mockUserRepo, mockMembershipRepo, mockTx, newTestLogger())

	ctx := context.Background()
	primaryUserID := uuid.New()
	beneficiaryUserID := uuid.New()
	holder := newPrimaryMembership("WC-2026-AAAA1111", primaryUserID)
	beneficiary := newBeneficiaryMembership("WC-2026-BBBB2222", holder.ID, beneficiaryUserID)

	mockMembershipRepo.EXPECT().FindByCardID(ctx, "CARD-001").Return(holder, nil)
	mockMembershipRepo.EXPECT().FindBeneficiaries(ctx, holder.ID).Return([]*entity.Membership{beneficiary}, nil)
	mockUserRepo.EXPECT().FindByID(ctx, primaryUserID).Return(&entity.User{ID: primaryUserID, Name: "Primary"}, nil)
	mockUserRepo.EXPECT().FindByID(ctx, beneficiaryUserID).Return(&entity.User{ID: beneficiaryUserID, Name: "Child"}, nil)

	list, err := service.ListCardAccess(ctx, "CARD-001")
	require.NoError(t, err)
	assert.Equal(t, holder.ID, list.PrimaryID)
	require.Len(t, list.Members, 2)
	assert.Equal(t, entity.AccessPrimary, list.Members[0].AccessType)
	assert.Equal(t, entity.AccessBeneficiary, list.Members[1].AccessType)
}

func TestRFIDService_ListCardAccess_UnknownCard(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := NewRFIDService(mockUserRepo, mockMembershipRepo, mockTx, newTestLogger())

	mockMembershipRepo.EXPECT().FindByCardID(context.Background(), "CARD-404").Return(nil, repository.ErrCardNotFound)

	list, err := service.ListCardAccess(context.Background(), "CARD-404")
	assert.Nil(t, list)
	assert.ErrorIs(t, err, domainerrors.ErrCardNotFound)
}

func TestRFIDService_AssignCard_TransactionFailure(t *testing.T) {
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	service := NewRFIDService(mockUserRepo, mockMembershipRepo, mockTx, newTestLogger())

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID}
	primary := newPrimaryMembership("WC-2026-AAAA1111", userID)

	mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	mockMembershipRepo.EXPECT().FindActiveByUser(ctx, userID).Return(primary, nil)
	mockTx.EXPECT().Execute(ctx, mock.Anything).Return(errors.New("tx failed"))

	result, err := service.AssignCard(ctx, usecase.Identity{UserID: &userID}, "CARD-001")
	assert.Nil(t, result)
	assert.Error(t, err)
}
