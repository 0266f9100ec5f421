// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"wellclub/internal/domain/entity"
	"wellclub/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for membership persistence.
var (
	// ErrMembershipNotFound is returned when a membership is not found.
	ErrMembershipNotFound = errors.New("membership not found")
	// ErrCardNotFound is returned when no membership holds the given RFID card.
	ErrCardNotFound = errors.New("rfid card not assigned to any membership")
	// ErrScanConflict is returned when a conditional scan write touched zero
	// rows because a concurrent scan committed first.
	ErrScanConflict = errors.New("scan state changed concurrently")
)

// MembershipRepository defines the interface for membership-related database
// operations, including RFID card binding and attendance scan state.
type MembershipRepository interface {
	// FindByID retrieves a membership by its business identifier.
	FindByID(ctx context.Context, id string) (*entity.Membership, error)

	// FindByCardID retrieves the membership currently holding the given RFID card.
	FindByCardID(ctx context.Context, cardID string) (*entity.Membership, error)

	// FindActiveByUser retrieves the user's currently active membership.
	// When more than one is active the most recently started wins, so the
	// result is deterministic.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Membership, error)

	// FindByUser retrieves all memberships owned by a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error)

	// FindBeneficiaries retrieves all memberships whose parent is the given
	// primary membership id.
	FindBeneficiaries(ctx context.Context, primaryID string) ([]*entity.Membership, error)

	// FindPrimaries retrieves every membership that roots a group: primaries
	// plus standalone records with no parent.
	FindPrimaries(ctx context.Context) ([]*entity.Membership, error)

	// FindCardHolders retrieves every membership with an RFID card assigned.
	FindCardHolders(ctx context.Context) ([]*entity.Membership, error)

	// CountGroupMembers returns the group size: the primary itself plus all
	// memberships referencing it as parent.
	CountGroupMembers(ctx context.Context, primaryID string) (int64, error)

	// Create persists a new membership.
	Create(ctx context.Context, membership *entity.Membership) error

	// ClearCardID removes the card binding from whichever membership holds
	// cardID. It is a no-op when no membership holds the card.
	ClearCardID(ctx context.Context, cardID string) error

	// SetCardID binds cardID to the given membership.
	SetCardID(ctx context.Context, membershipID, cardID string) error

	// RemoveCardID unbinds any card from the given membership. Idempotent.
	RemoveCardID(ctx context.Context, membershipID string) error

	// SetActive flips the soft-removal flag.
	SetActive(ctx context.Context, membershipID string, active bool) error

	// RecordScan appends the scan record, advances last_scan_at to the scan
	// timestamp and increments the scan counter, conditionally on the
	// membership's stored last_scan_at still equaling prevLastScanAt.
	// Returns ErrScanConflict when the guard fails, i.e. a concurrent scan
	// committed between the caller's read and this write.
	RecordScan(ctx context.Context, scan *entity.ScanRecord, prevLastScanAt *time.Time) error

	// FindScans retrieves the most recent scan records for a membership,
	// newest first, capped at limit.
	FindScans(ctx context.Context, membershipID string, limit int) ([]*entity.ScanRecord, error)
}
