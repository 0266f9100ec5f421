package usecase

import (
	"context"

	"wellclub/internal/domain/entity"

	"github.com/google/uuid"
)

// PurchaseOrder is handed to the client so it can open the gateway checkout.
type PurchaseOrder struct {
	OrderID  string  `json:"order_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	PlanID   string  `json:"plan_id"`
}

// ConfirmPurchaseInput carries the gateway checkout callback fields.
type ConfirmPurchaseInput struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
}

// MembershipUsecase defines membership purchase, group enrollment and
// administrative membership operations.
type MembershipUsecase interface {
	// CreatePurchaseOrder registers a gateway order for the plan's price and
	// stores a pending payment record.
	CreatePurchaseOrder(ctx context.Context, userID, planID uuid.UUID) (*PurchaseOrder, error)

	// ConfirmPurchase verifies the gateway signature, then marks the payment
	// captured and creates the primary membership in one transaction.
	ConfirmPurchase(ctx context.Context, userID uuid.UUID, input ConfirmPurchaseInput) (*entity.Membership, error)

	// InviteBeneficiary issues an OTP to the invitee's email. The invite is
	// bound to the inviting owner's primary membership.
	InviteBeneficiary(ctx context.Context, ownerUserID uuid.UUID, email, name string) error

	// VerifyBeneficiary consumes the OTP and creates the beneficiary
	// membership under the owner's primary, honoring the plan's member limit.
	VerifyBeneficiary(ctx context.Context, ownerUserID uuid.UUID, email, code string) (*entity.Membership, error)

	// MyMemberships lists the calling user's memberships, newest first.
	MyMemberships(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error)

	// MemberPass renders the QR pass PNG for the user's active membership.
	MemberPass(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// ListGroups returns every primary membership with its beneficiaries.
	ListGroups(ctx context.Context) ([]*entity.MembershipGroup, error)

	// Deactivate soft-removes a membership (isActive=false).
	Deactivate(ctx context.Context, membershipID string) error
}
