// Package impl contains the concrete use case services. Services are
// stateless: every call re-reads current state from the repositories and
// multi-step writes go through the transaction manager.
package impl

import (
	"context"
	"fmt"
	"log/slog"

	"wellclub/internal/domain/entity"
	domainerrors "wellclub/internal/domain/errors"
	"wellclub/internal/domain/repository"
	"wellclub/internal/errors"
	"wellclub/internal/usecase"

	"github.com/google/uuid"
)

type rfidService struct {
	userRepo       repository.UserRepository
	membershipRepo repository.MembershipRepository
	txManager      repository.TransactionManager
	logger         *slog.Logger
}

// NewRFIDService creates a new RFID card management service instance.
func NewRFIDService(
	userRepo repository.UserRepository,
	membershipRepo repository.MembershipRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.RFIDUsecase {
	return &rfidService{
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// resolveUser looks the user up by id first, then by email. Supplying
// neither identifier is a validation failure, not a lookup miss.
func (s *rfidService) resolveUser(ctx context.Context, identity usecase.Identity) (*entity.User, error) {
	if identity.Empty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("either user_id or email must be provided")
	}

	if identity.UserID != nil {
		user, err := s.userRepo.FindByID(ctx, *identity.UserID)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to find user by id")
		}
		// Fall through to the email lookup when one was supplied.
	}

	if identity.Email != "" {
		user, err := s.userRepo.FindByEmail(ctx, identity.Email)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to find user by email")
		}
	}

	return nil, domainerrors.ErrUserNotFound
}

// resolvePrimary returns the effective primary membership for any
// membership record. Beneficiaries resolve through their parent; records
// that are neither primary nor beneficiary (standalone) act as their own
// primary. Resolution always re-reads the parent by id rather than
// following an in-memory graph.
func resolvePrimary(ctx context.Context, membershipRepo repository.MembershipRepository, membership *entity.Membership) (*entity.Membership, error) {
	if membership.IsPrimary {
		return membership, nil
	}

	if membership.IsBeneficiary() {
		parent, err := membershipRepo.FindByID(ctx, *membership.ParentMembershipID)
		if err != nil {
			if errors.Is(err, repository.ErrMembershipNotFound) {
				return nil, domainerrors.ErrMembershipNotFound.WithDetails(
					fmt.Sprintf("parent membership %s does not exist", *membership.ParentMembershipID))
			}

			return nil, errors.Wrap(err, "failed to find parent membership")
		}

		return parent, nil
	}

	// Standalone record: no flag, no parent. Treated as its own primary so
	// legacy single-member records can still hold a card.
	return membership, nil
}

// activePrimaryFor resolves the identity to the user's active membership
// and then to the primary of its group.
func (s *rfidService) activePrimaryFor(ctx context.Context, identity usecase.Identity) (*entity.User, *entity.Membership, error) {
	user, err := s.resolveUser(ctx, identity)
	if err != nil {
		return nil, nil, err
	}

	membership, err := s.membershipRepo.FindActiveByUser(ctx, user.ID)
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

	return user, primary, nil
}

// AssignCard binds the card to the identified user's primary membership.
// The previous holder (if any) is cleared inside the same transaction, so
// the card is never held by two memberships and never lost between the
// clear and the set.
func (s *rfidService) AssignCard(ctx context.Context, identity usecase.Identity, cardID string) (*usecase.CardAssignment, error) {
	if cardID == "" {
		return nil, domainerrors.ErrCardIDRequired
	}

	user, primary, err := s.activePrimaryFor(ctx, identity)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		membershipRepo := factory.NewMembershipRepository()

		if err := membershipRepo.ClearCardID(ctx, cardID); err != nil {
			return errors.Wrap(err, "failed to clear previous card holder")
		}

		if err := membershipRepo.SetCardID(ctx, primary.ID, cardID); err != nil {
			return errors.Wrap(err, "failed to set card on primary membership")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("RFID card assigned",
		slog.String("card_id", cardID),
		slog.String("membership_id", primary.ID),
		slog.String("user_id", user.ID.String()),
	)

	return &usecase.CardAssignment{
		MembershipID: primary.ID,
		CardID:       cardID,
		Message:      "RFID card assigned to the primary membership; all group members can use it",
	}, nil
}

// UnassignCard removes the card binding from the identified user's primary
// membership. Calling it when no card is assigned succeeds with no change.
func (s *rfidService) UnassignCard(ctx context.Context, identity usecase.Identity) (*usecase.CardAssignment, error) {
	_, primary, err := s.activePrimaryFor(ctx, identity)
	if err != nil {
		return nil, err
	}

	if err := s.membershipRepo.RemoveCardID(ctx, primary.ID); err != nil {
		return nil, errors.Wrap(err, "failed to remove card from membership")
	}

	s.logger.Info("RFID card unassigned", slog.String("membership_id", primary.ID))

	return &usecase.CardAssignment{
		MembershipID: primary.ID,
		Message:      "RFID card removed from the primary membership",
	}, nil
}

// CheckAccess reports whether the user may use the card. "Card unknown"
// and "user has no active membership" are normal negative results, not
// errors.
func (s *rfidService) CheckAccess(ctx context.Context, userID uuid.UUID, cardID string) (*usecase.AccessResult, error) {
	holder, err := s.membershipRepo.FindByCardID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return &usecase.AccessResult{
				HasAccess:  false,
				AccessType: entity.AccessNone,
				Message:    "RFID card is not assigned to any membership",
			}, nil
		}

		return nil, errors.Wrap(err, "failed to find card holder")
	}

	membership, err := s.membershipRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return &usecase.AccessResult{
				HasAccess:        false,
				AccessType:       entity.AccessNone,
				CardMembershipID: holder.ID,
				Message:          "User does not have an active membership",
			}, nil
		}

		return nil, errors.Wrap(err, "failed to find active membership")
	}

	accessType := classifyAccess(membership, holder)

	result := &usecase.AccessResult{
		HasAccess:        accessType != entity.AccessNone,
		AccessType:       accessType,
		CardMembershipID: holder.ID,
		UserMembershipID: membership.ID,
	}
	if !result.HasAccess {
		result.Message = "User's membership is not part of the card holder's group"
	}

	return result, nil
}

// classifyAccess compares the user's membership against the card-holding
// membership and names the relation.
func classifyAccess(membership, holder *entity.Membership) entity.AccessType {
	switch {
	case membership.ID == holder.ID:
		return entity.AccessPrimary
	case membership.IsBeneficiary() && *membership.ParentMembershipID == holder.ID:
		return entity.AccessBeneficiary
	case membership.IsBeneficiary() && holder.IsBeneficiary() &&
		*membership.ParentMembershipID == *holder.ParentMembershipID:
		return entity.AccessGroupBeneficiary
	default:
		return entity.AccessNone
	}
}

// ListCardAccess enumerates the card holder's whole group with each
// member's user record attached.
func (s *rfidService) ListCardAccess(ctx context.Context, cardID string) (*usecase.CardAccessList, error) {
	holder, err := s.membershipRepo.FindByCardID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find card holder")
	}

	primary, err := resolvePrimary(ctx, s.membershipRepo, holder)
	if err != nil {
		return nil, err
	}

	beneficiaries, err := s.membershipRepo.FindBeneficiaries(ctx, primary.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find beneficiaries")
	}

	list := &usecase.CardAccessList{
		CardID:    cardID,
		PrimaryID: primary.ID,
		Members:   make([]*usecase.CardAccessEntry, 0, len(beneficiaries)+1),
	}

	entry, err := s.accessEntry(ctx, primary, entity.AccessPrimary)
	if err != nil {
		return nil, err
	}
	list.Members = append(list.Members, entry)

	for _, beneficiary := range beneficiaries {
		entry, err := s.accessEntry(ctx, beneficiary, entity.AccessBeneficiary)
		if err != nil {
			return nil, err
		}
		list.Members = append(list.Members, entry)
	}

	return list, nil
}

func (s *rfidService) accessEntry(ctx context.Context, membership *entity.Membership, accessType entity.AccessType) (*usecase.CardAccessEntry, error) {
	user, err := s.userRepo.FindByID(ctx, membership.UserID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find user for membership %s", membership.ID)
	}

	return &usecase.CardAccessEntry{
		MembershipID: membership.ID,
		UserID:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		AccessType:   accessType,
	}, nil
}
