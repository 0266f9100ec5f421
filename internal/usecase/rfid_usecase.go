// Package usecase defines the application's use case interfaces and the
// request/result shapes exchanged with the delivery layer.
package usecase

import (
	"context"

	"wellclub/internal/domain/entity"

	"github.com/google/uuid"
)

// Identity selects a user by id or by email. At least one field must be
// set; when both are, the id wins. This replaces the ad hoc OR filter of
// dynamic query builders with an explicit typed lookup.
type Identity struct {
	UserID *uuid.UUID `json:"user_id,omitempty"`
	Email  string     `json:"email,omitempty"`
}

// Empty reports whether no identifier was supplied at all.
func (i Identity) Empty() bool {
	return i.UserID == nil && i.Email == ""
}

// CardAssignment is the outcome of assigning or removing an RFID card.
type CardAssignment struct {
	MembershipID string `json:"membership_id"` // The primary membership the card is (or was) bound to.
	CardID       string `json:"rfid_card_id,omitempty"`
	Message      string `json:"message"` // Human-readable confirmation for the admin screen.
}

// AccessResult describes whether and how a user may use a card.
type AccessResult struct {
	HasAccess        bool              `json:"has_access"`
	AccessType       entity.AccessType `json:"access_type"`
	CardMembershipID string            `json:"card_membership_id,omitempty"`
	UserMembershipID string            `json:"user_membership_id,omitempty"`
	Message          string            `json:"message,omitempty"`
}

// CardAccessList enumerates every user with access to a card through its
// holding group.
type CardAccessList struct {
	CardID    string             `json:"rfid_card_id"`
	PrimaryID string             `json:"primary_membership_id"`
	Members   []*CardAccessEntry `json:"members"`
}

// CardAccessEntry is one group member in a CardAccessList.
type CardAccessEntry struct {
	MembershipID string            `json:"membership_id"`
	UserID       uuid.UUID         `json:"user_id"`
	Name         string            `json:"name"`
	Email        string            `json:"email"`
	AccessType   entity.AccessType `json:"access_type"`
}

// RFIDUsecase defines the card binding and access resolution use cases.
type RFIDUsecase interface {
	// AssignCard binds a card to the primary membership of the identified
	// user's group. Any previous holder of the card silently loses it; the
	// clear and the set happen in one transaction.
	AssignCard(ctx context.Context, identity Identity, cardID string) (*CardAssignment, error)

	// UnassignCard removes the card from the identified user's primary
	// membership. Idempotent when no card is assigned.
	UnassignCard(ctx context.Context, identity Identity) (*CardAssignment, error)

	// CheckAccess determines whether the user may use the card and how
	// (primary, beneficiary, group_beneficiary). A missing card or missing
	// active membership is a negative result, not an error.
	CheckAccess(ctx context.Context, userID uuid.UUID, cardID string) (*AccessResult, error)

	// ListCardAccess enumerates all users with access to the card.
	ListCardAccess(ctx context.Context, cardID string) (*CardAccessList, error)
}
