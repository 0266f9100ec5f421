package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"wellclub/config"
	"wellclub/internal/domain/entity"
	domainerrors "wellclub/internal/domain/errors"
	"wellclub/internal/domain/repository"
	"wellclub/internal/domain/service"
	mockRepo "wellclub/internal/mocks/repository"
	mockSvc "wellclub/internal/mocks/service"
	"wellclub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type membershipFixture struct {
	userRepo       *mockRepo.MockUserRepository
	membershipRepo *mockRepo.MockMembershipRepository
	planRepo       *mockRepo.MockPlanRepository
	paymentRepo    *mockRepo.MockPaymentRepository
	txManager      *mockRepo.MockTransactionManager
	gateway        *mockSvc.MockPaymentGateway
	otp            *mockSvc.MockOTPService
	mail           *mockSvc.MockMailService
	qrcode         *mockSvc.MockQRCodeService
	service        usecase.MembershipUsecase
}

func newMembershipFixture(t *testing.T) *membershipFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.Membership = &config.MembershipConfig{
		ScanCooldown: 6 * time.Hour,
		IDPrefix:     "WC",
		OTPTTL:       10 * time.Minute,
		OTPLength:    6,
		Currency:     "INR",
	}

	f := &membershipFixture{
		userRepo:       mockRepo.NewMockUserRepository(t),
		membershipRepo: mockRepo.NewMockMembershipRepository(t),
		planRepo:       mockRepo.NewMockPlanRepository(t),
		paymentRepo:    mockRepo.NewMockPaymentRepository(t),
		txManager:      mockRepo.NewMockTransactionManager(t),
		gateway:        mockSvc.NewMockPaymentGateway(t),
		otp:            mockSvc.NewMockOTPService(t),
		mail:           mockSvc.NewMockMailService(t),
		qrcode:         mockSvc.NewMockQRCodeService(t),
	}
	f.service = NewMembershipService(
		f.userRepo, f.membershipRepo, f.planRepo, f.paymentRepo, f.txManager,
		f.gateway, f.otp, f.mail, f.qrcode, cfg, newTestLogger(),
	)

	return f
}

// expectPurchaseTransaction wires the tx mock so the callback sees the
// fixture's membership and payment repositories.
func (f *membershipFixture) expectPurchaseTransaction(t *testing.T) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewMembershipRepository().Return(f.membershipRepo).Maybe()
	factory.EXPECT().NewPaymentRepository().Return(f.paymentRepo).Maybe()

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func yearlyPlan() *entity.Plan {
	return &entity.Plan{
		ID:            uuid.New(),
		Name:          "Family Annual",
		Price:         4999,
		DurationYears: 1,
		MaxMembers:    4,
		IsActive:      true,
	}
}

func TestMembershipService_CreatePurchaseOrder(t *testing.T) {
	f := newMembershipFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	plan := yearlyPlan()

	f.planRepo.EXPECT().FindByID(ctx, plan.ID).Return(plan, nil)
	f.gateway.EXPECT().
		CreateOrder(ctx, plan.Price, "INR", mock.AnythingOfType("string")).
		Return(&service.PaymentOrder{OrderID: "order_abc123", Amount: plan.Price, Currency: "INR"}, nil)
	f.paymentRepo.EXPECT().Create(ctx, mock.MatchedBy(func(payment *entity.Payment) bool {
		// The payment record pins the purchased plan for the confirm step.
		return payment.PlanID == plan.ID
	})).Return(nil)

	order, err := f.service.CreatePurchaseOrder(ctx, userID, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, "order_abc123", order.OrderID)
	assert.Equal(t, plan.Price, order.Amount)
	assert.Equal(t, "INR", order.Currency)
}

func TestMembershipService_CreatePurchaseOrder_UnknownPlan(t *testing.T) {
	f := newMembershipFixture(t)

	ctx := context.Background()
	planID := uuid.New()

	f.planRepo.EXPECT().FindByID(ctx, planID).Return(nil, repository.ErrPlanNotFound)

	order, err := f.service.CreatePurchaseOrder(ctx, uuid.New(), planID)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrPlanNotFound)
}

func TestMembershipService_ConfirmPurchase_Success(t *testing.T) {
	f := newMembershipFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	plan := yearlyPlan()
	payment := &entity.Payment{
		ID:             uuid.New(),
		UserID:         userID,
		PlanID:         plan.ID,
		Amount:         plan.Price,
		Currency:       "INR",
		Status:         entity.PaymentCreated,
		GatewayOrderID: "order_abc123",
	}

	f.gateway.EXPECT().VerifySignature("order_abc123", "pay_xyz789", "sig").Return(true)
	f.paymentRepo.EXPECT().FindByGatewayOrderID(ctx, "order_abc123").Return(payment, nil)
	f.planRepo.EXPECT().FindByID(ctx, plan.ID).Return(plan, nil)
	f.membershipRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Membership")).Return(nil)
	f.paymentRepo.EXPECT().Update(ctx, payment).Return(nil)
	f.expectPurchaseTransaction(t)

	// Confirmation mail is best-effort.
	f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Name: "Buyer", Email: "buyer@example.com"}, nil)
	f.mail.EXPECT().Send(ctx, "buyer@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil)

	membership, err := f.service.ConfirmPurchase(ctx, userID, usecase.ConfirmPurchaseInput{
		OrderID:   "order_abc123",
		PaymentID: "pay_xyz789",
		Signature: "sig",
	})
	require.NoError(t, err)
	assert.True(t, membership.IsPrimary)
	assert.True(t, membership.IsActive)
	assert.Equal(t, userID, membership.UserID)
	assert.Equal(t, plan.ID, membership.PlanID)
	assert.Regexp(t, `^WC-\d{4}-[0-9A-F]{8}$`, membership.ID)
	assert.Equal(t, entity.PaymentCaptured, payment.Status)
	assert.Equal(t, "pay_xyz789", payment.GatewayPaymentID)
}

func TestMembershipService_ConfirmPurchase_EqualPricedPlans(t *testing.T) {
	f := newMembershipFixture(t)

	ctx := context.Background()
	userID := uuid.New()

	// Two plans at the same price; the payment record, not the amount,
	// decides which plan the membership lands on.
	family := &entity.Plan{
		ID:            uuid.New(),
		Name:          "Family 3-Year",
		Price:         4999,
		DurationYears: 3,
		MaxMembers:    4,
		IsActive:      true,
	}
	payment := &entity.Payment{
		ID:             uuid.New(),
		UserID:         userID,
		PlanID:         family.ID,
		Amount:         family.Price, // Same price as "Solo Annual".
		Currency:       "INR",
		Status:         entity.PaymentCreated,
		GatewayOrderID: "order_abc123",
	}

	f.gateway.EXPECT().VerifySignature("order_abc123", "pay_xyz789", "sig").Return(true)
	f.paymentRepo.EXPECT().FindByGatewayOrderID(ctx, "order_abc123").Return(payment, nil)
	f.planRepo.EXPECT().FindByID(ctx, family.ID).Return(family, nil)
	f.membershipRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Membership")).Return(nil)
	f.paymentRepo.EXPECT().Update(ctx, payment).Return(nil)
	f.expectPurchaseTransaction(t)
	f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: "buyer@example.com"}, nil)
	f.mail.EXPECT().Send(ctx, "buyer@example.com", mock.Anything, mock.Anything).Return(nil)

	membership, err := f.service.ConfirmPurchase(ctx, userID, usecase.ConfirmPurchaseInput{
		OrderID:   "order_abc123",
		PaymentID: "pay_xyz789",
		Signature: "sig",
	})
	require.NoError(t, err)
	assert.Equal(t, family.ID, membership.PlanID)
	// The 3-year term comes from the pinned plan.
	assert.Equal(t, membership.StartDate.AddDate(3, 0, 0), membership.EndDate)
}

func TestMembershipService_ConfirmPurchase_BadSignature(t *testing.T) {
	f := newMembershipFixture(t)

	f.gateway.EXPECT().VerifySignature("order_abc123", "pay_xyz789", "forged").Return(false)

	membership, err := f.service.ConfirmPurchase(context.Background(), uuid.New(), usecase.ConfirmPurchaseInput{
		OrderID:   "order_abc123",
		PaymentID: "pay_xyz789",
		Signature: "forged",
	})
	assert.Nil(t, membership)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentSignatureInvalid)
}

func TestMembershipService_ConfirmPurchase_WrongUser(t *testing.T) {
	f := newMembershipFixture(t)

	ctx := context.Background()
	payment := &entity.Payment{
		ID:             uuid.New(),
		UserID:         uuid.New(), // someone else's payment
		GatewayOrderID: "order_abc123",
	}

	f.gateway.EXPECT().VerifySignature("order_abc123", "pay_xyz789", "sig").Return(true)
	f.paymentRepo.EXPECT().FindByGatewayOrderID(ctx, "order_abc123").Return(payment, nil)

	membership, err := f.service.ConfirmPurchase(ctx, uuid.New(), usecase.ConfirmPurchaseInput{
		OrderID:   "order_abc123",
		PaymentID: "pay_xyz789",
		Signature: "sig",
	})
	assert.Nil(t, membership)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestMembershipService_ConfirmPurchase_MailFailureDoesNotFailPurchase(t *testing.T) {
	f := newMembershipFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	plan := yearlyPlan()
	payment := &entity.Payment{ID: uuid.New(), UserID: userID, PlanID: plan.ID, Amount: plan.Price, GatewayOrderID: "order_abc123"}

	f.gateway.EXPECT().VerifySignature("order_abc123", "pay_xyz789", "sig").Return(true)
	f.paymentRepo.EXPECT().FindByGatewayOrderID(ctx, "order_abc123").Return(payment, nil)
	f.planRepo.EXPECT().FindByID(ctx, plan.ID).Return(plan, nil)
	f.membershipRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Membership")).Return(nil)
	f.paymentRepo.EXPECT().Update(ctx, payment).Return(nil)
	f.expectPurchaseTransaction(t)
	f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: "buyer@example.com"}, nil)
	f.mail.EXPECT().Send(ctx, "buyer@example.com", mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	membership, err := f.service.ConfirmPurchase(ctx, userID, usecase.ConfirmPurchaseInput{
		OrderID:   "order_abc123",
		PaymentID: "pay_xyz789",
		Signature: "sig",
	})
	require.NoError(t, err)
	assert.NotNil(t, membership)
}

func TestMembershipService_InviteBeneficiary(t *testing.T) {
	f := newMembershipFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	plan := yearlyPlan()
	primary := newPrimaryMembership("WC-2026-AAAA1111", ownerID)
	primary.PlanID = plan.ID

	f.membershipRepo.EXPECT().FindActiveByUser(ctx, ownerID).Return(primary, nil)
	f.planRepo.EXPECT().FindByID(ctx, plan.ID).Return(plan, nil)
	f.membershipRepo.EXPECT().CountGroupMembers(ctx, primary.ID).Return(2, nil)
	f.otp.EXPECT().Issue(ctx, "beneficiary:WC-2026-AAAA1111:invitee@example.com").Return("483920", nil)
	f.mail.EXPECT().
		Send(ctx, "invitee@example.com", mock.AnythingOfType("string"), mock.MatchedBy(func(body string) bool {
			// The code must reach the invitee verbatim.
			return strings.Contains(body, "483920")
		})).
		Return(nil)

	err := f.service.InviteBeneficiary(ctx, ownerID, "invitee@example.com", "Invitee")
	require.NoError(t, err)
}

func TestMembershipService_InviteBeneficiary_GroupFull(t *testing.T) {
	f := newMembershipFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	plan := yearlyPlan()
	primary := newPrimaryMembership("WC-2026-AAAA1111", ownerID)
	primary.PlanID = plan.ID

	f.membershipRepo.EXPECT().FindActiveByUser(ctx, ownerID).Return(primary, nil)
	f.planRepo.EXPECT().FindByID(ctx, plan.ID).Return(plan, nil)
	f.membershipRepo.EXPECT().CountGroupMembers(ctx, primary.ID).Return(int64(plan.MaxMembers), nil)

	err := f.service.InviteBeneficiary(ctx, ownerID, "invitee@example.com", "")
	assert.ErrorIs(t, err, domainerrors.ErrGroupFull)
}

func TestMembershipService_VerifyBeneficiary(t *testing.T) {
	f := newMembershipFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	plan := yearlyPlan()
	primary := newPrimaryMembership("WC-2026-AAAA1111", ownerID)
	primary.PlanID = plan.ID
	inviteeID := uuid.New()
	invitee := &entity.User{ID: inviteeID, Email: "invitee@example.com"}

	f.membershipRepo.EXPECT().FindActiveByUser(ctx, ownerID).Return(primary, nil)
	f.planRepo.EXPECT().FindByID(ctx, plan.ID).Return(plan, nil)
	f.otp.EXPECT().Verify(ctx, "beneficiary:WC-2026-AAAA1111:invitee@example.com", "483920").Return(true)
	f.membershipRepo.EXPECT().CountGroupMembers(ctx, primary.ID).Return(2, nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "invitee@example.com").Return(invitee, nil)
	f.membershipRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Membership")).Return(nil)

	membership, err := f.service.VerifyBeneficiary(ctx, ownerID, "invitee@example.com", "483920")
	require.NoError(t, err)
	assert.False(t, membership.IsPrimary)
	require.NotNil(t, membership.ParentMembershipID)
	assert.Equal(t, primary.ID, *membership.ParentMembershipID)
	assert.Equal(t, inviteeID, membership.UserID)
	// Beneficiaries expire with their primary.
	assert.Equal(t, primary.EndDate, membership.EndDate)
}

func TestMembershipService_VerifyBeneficiary_BadCode(t *testing.T) {
	f := newMembershipFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	plan := yearlyPlan()
	primary := newPrimaryMembership("WC-2026-AAAA1111", ownerID)
	primary.PlanID = plan.ID

	f.membershipRepo.EXPECT().FindActiveByUser(ctx, ownerID).Return(primary, nil)
	f.planRepo.EXPECT().FindByID(ctx, plan.ID).Return(plan, nil)
	f.otp.EXPECT().Verify(ctx, "beneficiary:WC-2026-AAAA1111:invitee@example.com", "000000").Return(false)

	membership, err := f.service.VerifyBeneficiary(ctx, ownerID, "invitee@example.com", "000000")
	assert.Nil(t, membership)
	assert.ErrorIs(t, err, domainerrors.ErrOTPInvalid)
}

func TestMembershipService_VerifyBeneficiary_CreatesPlaceholderUser(t *testing.T) {
	f := newMembershipFixture(t)

	ctx := context.Background()
	ownerID := uuid.New()
	plan := yearlyPlan()
	primary := newPrimaryMembership("WC-2026-AAAA1111", ownerID)
	primary.PlanID = plan.ID

	f.membershipRepo.EXPECT().FindActiveByUser(ctx, ownerID).Return(primary, nil)
	f.planRepo.EXPECT().FindByID(ctx, plan.ID).Return(plan, nil)
	f.otp.EXPECT().Verify(ctx, "beneficiary:WC-2026-AAAA1111:fresh@example.com", "483920").Return(true)
	f.membershipRepo.EXPECT().CountGroupMembers(ctx, primary.ID).Return(1, nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "fresh@example.com").Return(nil, repository.ErrUserNotFound)
	f.userRepo.EXPECT().Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
		return user.Email == "fresh@example.com" && user.Name == "fresh" && user.Role == entity.RoleMember
	})).Return(nil)
	f.membershipRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Membership")).Return(nil)

	membership, err := f.service.VerifyBeneficiary(ctx, ownerID, "fresh@example.com", "483920")
	require.NoError(t, err)
	assert.NotNil(t, membership)
}

func TestMembershipService_MemberPass(t *testing.T) {
	f := newMembershipFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	membership := newPrimaryMembership("WC-2026-AAAA1111", userID)

	f.membershipRepo.EXPECT().FindActiveByUser(ctx, userID).Return(membership, nil)
	f.qrcode.EXPECT().GenerateMemberPass(membership.ID).Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	pass, err := f.service.MemberPass(ctx, userID)
	require.NoError(t, err)
	assert.NotEmpty(t, pass)
}

func TestMembershipService_MemberPass_NoActiveMembership(t *testing.T) {
	f := newMembershipFixture(t)

	ctx := context.Background()
	userID := uuid.New()

	f.membershipRepo.EXPECT().FindActiveByUser(ctx, userID).Return(nil, repository.ErrMembershipNotFound)

	pass, err := f.service.MemberPass(ctx, userID)
	assert.Nil(t, pass)
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveMembership)
}

func TestMembershipService_ListGroups(t *testing.T) {
	f := newMembershipFixture(t)

	ctx := context.Background()
	primary := newPrimaryMembership("WC-2026-AAAA1111", uuid.New())
	beneficiary := newBeneficiaryMembership("WC-2026-BBBB2222", primary.ID, uuid.New())

	f.membershipRepo.EXPECT().FindPrimaries(ctx).Return([]*entity.Membership{primary}, nil)
	f.membershipRepo.EXPECT().FindBeneficiaries(ctx, primary.ID).Return([]*entity.Membership{beneficiary}, nil)

	groups, err := f.service.ListGroups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, primary, groups[0].Primary)
	require.Len(t, groups[0].Beneficiaries, 1)
	assert.Equal(t, beneficiary, groups[0].Beneficiaries[0])
}

func TestMembershipService_Deactivate(t *testing.T) {
	f := newMembershipFixture(t)

	ctx := context.Background()
	membership := newPrimaryMembership("WC-2026-AAAA1111", uuid.New())

	f.membershipRepo.EXPECT().FindByID(ctx, membership.ID).Return(membership, nil)
	f.membershipRepo.EXPECT().SetActive(ctx, membership.ID, false).Return(nil)

	require.NoError(t, f.service.Deactivate(ctx, membership.ID))
}

func TestMembershipService_Deactivate_NotFound(t *testing.T) {
	f := newMembershipFixture(t)

	ctx := context.Background()
	f.membershipRepo.EXPECT().FindByID(ctx, "WC-2026-GONE0000").Return(nil, repository.ErrMembershipNotFound)

	err := f.service.Deactivate(ctx, "WC-2026-GONE0000")
	assert.ErrorIs(t, err, domainerrors.ErrMembershipNotFound)
}
