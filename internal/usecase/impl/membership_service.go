package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"wellclub/config"
	"wellclub/internal/domain/entity"
	domainerrors "wellclub/internal/domain/errors"
	"wellclub/internal/domain/repository"
	"wellclub/internal/domain/service"
	"wellclub/internal/errors"
	"wellclub/internal/usecase"

	"github.com/google/uuid"
)

type membershipService struct {
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
	planRepo       repository.PlanRepository
	paymentRepo    repository.PaymentRepository
	txManager      repository.TransactionManager
	gateway        service.PaymentGateway
	otpService     service.OTPService
	mailService    service.MailService
	qrcodeService  service.QRCodeService
	cfg            *config.Config
	logger         *slog.Logger
}

// NewMembershipService creates a new membership management service instance.
func NewMembershipService(
	userRepo repository.UserRepository,
	membershipRepo repository.MembershipRepository,
	planRepo repository.PlanRepository,
	paymentRepo repository.PaymentRepository,
	txManager repository.TransactionManager,
	gateway service.PaymentGateway,
	otpService service.OTPService,
	mailService service.MailService,
	qrcodeService service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.MembershipUsecase {
	return &membershipService{
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		planRepo:       planRepo,
		paymentRepo:    paymentRepo,
		txManager:      txManager,
		gateway:        gateway,
		otpService:     otpService,
		mailService:    mailService,
		qrcodeService:  qrcodeService,
		cfg:            cfg,
		logger:         logger,
	}
}

// newMembershipID builds a business-meaningful membership identifier,
// e.g. "WC-2026-4F7A2C1B".
func newMembershipID(prefix string, now time.Time) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])

	return fmt.Sprintf("%s-%d-%s", prefix, now.Year(), token)
}

// beneficiaryOTPKey scopes an enrollment code to one primary membership and
// one invitee address.
func beneficiaryOTPKey(primaryID, email string) string {
	return "beneficiary:" + primaryID + ":" + strings.ToLower(email)
}

// CreatePurchaseOrder registers a gateway order for the plan's price and
// stores a pending payment record referencing it.
func (s *membershipService) CreatePurchaseOrder(ctx context.Context, userID, planID uuid.UUID) (*usecase.PurchaseOrder, error) {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan")
	}

	receipt := fmt.Sprintf("plan-%s-user-%s", plan.ID, userID)
	order, err := s.gateway.CreateOrder(ctx, plan.Price, s.cfg.Membership.Currency, receipt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create gateway order")
	}

	payment := &entity.Payment{
		ID:             uuid.New(),
		UserID:         userID,
		PlanID:         plan.ID,
		Amount:         order.Amount,
		Currency:       order.Currency,
		Status:         entity.PaymentCreated,
		GatewayOrderID: order.OrderID,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to store payment record")
	}

	return &usecase.PurchaseOrder{
		OrderID:  order.OrderID,
		Amount:   order.Amount,
		Currency: order.Currency,
		PlanID:   plan.ID.String(),
	}, nil
}

// ConfirmPurchase verifies the gateway signature and, in one transaction,
// marks the payment captured and creates the primary membership.
func (s *membershipService) ConfirmPurchase(ctx context.Context, userID uuid.UUID, input usecase.ConfirmPurchaseInput) (*entity.Membership, error) {
	if !s.gateway.VerifySignature(input.OrderID, input.PaymentID, input.Signature) {
		return nil, domainerrors.ErrPaymentSignatureInvalid
	}

	payment, err := s.paymentRepo.FindByGatewayOrderID(ctx, input.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by order id")
	}
	if payment.UserID != userID {
		return nil, domainerrors.ErrForbidden.WithDetails("payment belongs to a different user")
	}

	// The plan was pinned on the payment record at order time.
	plan, err := s.planRepo.FindByID(ctx, payment.PlanID)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchased plan")
	}

	now := time.Now()
	membership := &entity.Membership{
		ID:        newMembershipID(s.cfg.Membership.IDPrefix, now),
		UserID:    userID,
		PlanID:    plan.ID,
		StartDate: now,
		EndDate:   now.AddDate(plan.DurationYears, 0, 0),
		IsActive:  true,
		IsPrimary: true,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewMembershipRepository().Create(ctx, membership); err != nil {
			return errors.Wrap(err, "failed to create membership")
		}

		payment.Status = entity.PaymentCaptured
		payment.GatewayPaymentID = input.PaymentID
		payment.MembershipID = &membership.ID
		if err := factory.NewPaymentRepository().Update(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to capture payment")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("membership purchased",
		slog.String("membership_id", membership.ID),
		slog.String("user_id", userID.String()),
		slog.String("plan", plan.Name),
	)

	s.sendConfirmationMail(ctx, userID, membership, plan)

	return membership, nil
}

func (s *membershipService) sendConfirmationMail(ctx context.Context, userID uuid.UUID, membership *entity.Membership, plan *entity.Plan) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		s.logger.Warn("confirmation mail skipped: user lookup failed", slog.Any("error", err))

		return
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nYour %s membership is active.\nMembership ID: %s\nValid until: %s\n",
		user.Name, plan.Name, membership.ID, membership.EndDate.Format("2 Jan 2006"),
	)
	if err := s.mailService.Send(ctx, user.Email, "Welcome to the club", body); err != nil {
		// Mail failures never fail the purchase.
		s.logger.Warn("confirmation mail failed", slog.Any("error", err))
	}
}

// InviteBeneficiary issues an enrollment OTP bound to the owner's primary
// membership and mails it to the invitee.
func (s *membershipService) InviteBeneficiary(ctx context.Context, ownerUserID uuid.UUID, email, name string) error {
	primary, plan, err := s.ownerPrimaryAndPlan(ctx, ownerUserID)
	if err != nil {
		return err
	}

	count, err := s.membershipRepo.CountGroupMembers(ctx, primary.ID)
	if err != nil {
		return errors.Wrap(err, "failed to count group members")
	}
	if plan.MaxMembers > 0 && count >= int64(plan.MaxMembers) {
		return domainerrors.ErrGroupFull
	}

	code, err := s.otpService.Issue(ctx, beneficiaryOTPKey(primary.ID, email))
	if err != nil {
		return errors.Wrap(err, "failed to issue enrollment code")
	}

	greeting := name
	if greeting == "" {
		greeting = "there"
	}
	body := fmt.Sprintf(
		"Hi %s,\n\nYou have been invited to join membership %s.\nYour verification code is %s. It expires in %s.\n",
		greeting, primary.ID, code, s.cfg.Membership.OTPTTL,
	)
	if err := s.mailService.Send(ctx, email, "Your club membership invitation", body); err != nil {
		return errors.Wrap(err, "failed to send invitation mail")
	}

	s.logger.Info("beneficiary invited",
		slog.String("primary_membership_id", primary.ID),
		slog.String("email", email),
	)

	return nil
}

// VerifyBeneficiary consumes the OTP and creates the beneficiary
// membership under the owner's primary.
func (s *membershipService) VerifyBeneficiary(ctx context.Context, ownerUserID uuid.UUID, email, code string) (*entity.Membership, error) {
	primary, plan, err := s.ownerPrimaryAndPlan(ctx, ownerUserID)
	if err != nil {
		return nil, err
	}

	if !s.otpService.Verify(ctx, beneficiaryOTPKey(primary.ID, email), code) {
		return nil, domainerrors.ErrOTPInvalid
	}

	// Capacity is re-checked at verification time: invitations may race.
	count, err := s.membershipRepo.CountGroupMembers(ctx, primary.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count group members")
	}
	if plan.MaxMembers > 0 && count >= int64(plan.MaxMembers) {
		return nil, domainerrors.ErrGroupFull
	}

	beneficiaryUser, err := s.findOrCreateUser(ctx, email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	parentID := primary.ID
	membership := &entity.Membership{
		ID:                 newMembershipID(s.cfg.Membership.IDPrefix, now),
		UserID:             beneficiaryUser.ID,
		PlanID:             primary.PlanID,
		StartDate:          now,
		EndDate:            primary.EndDate, // Beneficiaries expire with their primary.
		IsActive:           true,
		IsPrimary:          false,
		ParentMembershipID: &parentID,
	}

	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return nil, errors.Wrap(err, "failed to create beneficiary membership")
	}

	s.logger.Info("beneficiary enrolled",
		slog.String("membership_id", membership.ID),
		slog.String("primary_membership_id", primary.ID),
	)

	return membership, nil
}

// ownerPrimaryAndPlan resolves the owner's active membership to its primary
// and loads the governing plan.
func (s *membershipService) ownerPrimaryAndPlan(ctx context.Context, ownerUserID uuid.UUID) (*entity.Membership, *entity.Plan, error) {
	membership, err := s.membershipRepo.FindActiveByUser(ctx, ownerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return nil, nil, domainerrors.ErrNoActiveMembership
		}

		return nil, nil, errors.Wrap(err, "failed to find active membership")
	}

	primary, err := resolvePrimary(ctx, s.membershipRepo, membership)
	if err != nil {
		return nil, nil, err
	}

	plan, err := s.planRepo.FindByID(ctx, primary.PlanID)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, nil, domainerrors.ErrPlanNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find plan")
	}

	return primary, plan, nil
}

// findOrCreateUser returns the account for the invitee's email, creating a
// placeholder member account when none exists yet.
func (s *membershipService) findOrCreateUser(ctx context.Context, email string) (*entity.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	user = &entity.User{
		ID:         uuid.New(),
		Email:      email,
		Name:       strings.Split(email, "@")[0],
		Role:       entity.RoleMember,
		IsVerified: true, // Enrollment OTP doubles as contact verification.
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create beneficiary user")
	}

	return user, nil
}

// MyMemberships lists the calling user's memberships, newest first.
func (s *membershipService) MyMemberships(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error) {
	memberships, err := s.membershipRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list memberships")
	}

	return memberships, nil
}

// MemberPass renders the QR pass for the user's active membership.
func (s *membershipService) MemberPass(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	membership, err := s.membershipRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return nil, domainerrors.ErrNoActiveMembership
		}

		return nil, errors.Wrap(err, "failed to find active membership")
	}

	pass, err := s.qrcodeService.GenerateMemberPass(membership.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate member pass")
	}

	return pass, nil
}

// ListGroups returns every group: each primary (or standalone) membership
// with its beneficiaries.
func (s *membershipService) ListGroups(ctx context.Context) ([]*entity.MembershipGroup, error) {
	primaries, err := s.membershipRepo.FindPrimaries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list primary memberships")
	}

	groups := make([]*entity.MembershipGroup, 0, len(primaries))
	for _, primary := range primaries {
		beneficiaries, err := s.membershipRepo.FindBeneficiaries(ctx, primary.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list beneficiaries of %s", primary.ID)
		}

		groups = append(groups, &entity.MembershipGroup{
			Primary:       primary,
			Beneficiaries: beneficiaries,
		})
	}

	return groups, nil
}

// Deactivate soft-removes a membership.
func (s *membershipService) Deactivate(ctx context.Context, membershipID string) error {
	if _, err := s.membershipRepo.FindByID(ctx, membershipID); err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return domainerrors.ErrMembershipNotFound
		}

		return errors.Wrap(err, "failed to find membership")
	}

	if err := s.membershipRepo.SetActive(ctx, membershipID, false); err != nil {
		return errors.Wrap(err, "failed to deactivate membership")
	}

	s.logger.Info("membership deactivated", slog.String("membership_id", membershipID))

	return nil
}
