// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Membership is the central entity of the club. A membership is either
// primary (the root of a group, eligible to hold an RFID card), a
// beneficiary (linked to a primary via ParentMembershipID, inheriting card
// access), or standalone (neither flag nor parent; treated as its own
// primary for card purposes).
type Membership struct {
	ID                 string     // Business-meaningful identifier, e.g. "WC-2026-4F7A2C1B".
	UserID             uuid.UUID  // The owning user. Never duplicated; always a reference.
	PlanID             uuid.UUID  // The plan this membership was purchased under.
	StartDate          time.Time  // First day of validity.
	EndDate            time.Time  // Last day of validity; scans past this are rejected.
	IsActive           bool       // Soft-removal flag; false means deactivated.
	IsPrimary          bool       // True for the root membership of a group.
	ParentMembershipID *string    // Set on beneficiaries; references the primary's ID.
	RFIDCardID         *string    // Globally unique card identifier when assigned.
	LastScanAt         *time.Time // Timestamp of the most recent successful attendance scan.
	ScanCount          int64      // Monotonically increasing count of successful scans.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsBeneficiary reports whether this membership belongs to a group rooted
// at another membership.
func (m *Membership) IsBeneficiary() bool {
	return m.ParentMembershipID != nil && *m.ParentMembershipID != ""
}

// IsExpired reports whether the membership's validity window has passed.
func (m *Membership) IsExpired(now time.Time) bool {
	return m.EndDate.Before(now)
}

// HoldsCard reports whether an RFID card is currently assigned.
func (m *Membership) HoldsCard() bool {
	return m.RFIDCardID != nil && *m.RFIDCardID != ""
}

// ScanRecord captures a single RFID tap event. Scan history is append-only.
type ScanRecord struct {
	ID           uuid.UUID
	MembershipID string     // The card-holding membership the tap was recorded against.
	CardID       string     // The RFID card identifier that was tapped.
	UserID       *uuid.UUID // The tapping user when the reader resolved one; nil for kiosk taps.
	ScannedAt    time.Time
}

// AccessType classifies how a user relates to a card-holding membership.
type AccessType string

const (
	// AccessPrimary means the user's own membership holds the card.
	AccessPrimary AccessType = "primary"
	// AccessBeneficiary means the user's membership is a child of the card holder.
	AccessBeneficiary AccessType = "beneficiary"
	// AccessGroupBeneficiary means the user and the card holder are siblings
	// under the same primary membership.
	AccessGroupBeneficiary AccessType = "group_beneficiary"
	// AccessNone means no group relation exists.
	AccessNone AccessType = "none"
)

// ScanStatus is the derived scan-eligibility state of a membership.
// There is no stored state field; the status is recomputed from
// LastScanAt against the clock on every tap.
type ScanStatus struct {
	Ready         bool          // True when a scan is currently allowed.
	Remaining     time.Duration // Time left until the next allowed scan; zero when Ready.
	NextAllowedAt time.Time     // LastScanAt + cooldown; zero value when Ready with no prior scan.
}

// ScanEligibility derives the cooldown state of a membership from its last
// successful scan. It is a pure function so the cooldown window can be
// tested without a database.
func ScanEligibility(lastScanAt *time.Time, now time.Time, cooldown time.Duration) ScanStatus {
	if lastScanAt == nil || lastScanAt.IsZero() {
		return ScanStatus{Ready: true}
	}

	next := lastScanAt.Add(cooldown)
	if !now.Before(next) {
		return ScanStatus{Ready: true}
	}

	return ScanStatus{
		Ready:         false,
		Remaining:     next.Sub(now),
		NextAllowedAt: next,
	}
}

// RemainingPhrase renders the remaining wait as whole hours and minutes,
// e.g. "5 hour(s) and 59 minute(s)". Sub-minute remainders floor to zero.
func (s ScanStatus) RemainingPhrase() string {
	hours := int(s.Remaining / time.Hour)
	minutes := int((s.Remaining % time.Hour) / time.Minute)

	return fmt.Sprintf("%d hour(s) and %d minute(s)", hours, minutes)
}

// MembershipGroup is a primary membership together with its beneficiaries,
// as returned by the admin group listing.
type MembershipGroup struct {
	Primary       *Membership
	Beneficiaries []*Membership
}
