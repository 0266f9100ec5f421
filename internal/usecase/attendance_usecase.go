package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ScanOutcome is the result of a single RFID tap. A cooldown violation is
// an expected, high-frequency condition, so it is reported here with
// Success=false rather than as an error.
type ScanOutcome struct {
	Success       bool       `json:"success"`
	MembershipID  string     `json:"membership_id"`
	Message       string     `json:"message"`
	ScanCount     int64      `json:"scan_count,omitempty"`      // New counter value on success.
	ScannedAt     *time.Time `json:"scanned_at,omitempty"`      // Timestamp recorded on success.
	NextAllowedAt *time.Time `json:"next_allowed_at,omitempty"` // Set on cooldown rejection.
	RemainingMs   int64      `json:"remaining_ms,omitempty"`    // Milliseconds until NextAllowedAt.
}

// CardUsage is one row of the admin usage report.
type CardUsage struct {
	MembershipID string     `json:"membership_id"`
	CardID       string     `json:"rfid_card_id"`
	UserID       uuid.UUID  `json:"user_id"`
	ScanCount    int64      `json:"scan_count"`
	LastScanAt   *time.Time `json:"last_scan_at,omitempty"`
	RecentScans  int        `json:"recent_scans"` // Scans within the report window.
}

// AttendanceUsecase defines the attendance scan use cases.
type AttendanceUsecase interface {
	// RecordScan validates and records one RFID tap. userID is nil for
	// kiosk readers that don't resolve identity client-side; such taps are
	// accepted once the card's membership checks pass.
	RecordScan(ctx context.Context, cardID string, userID *uuid.UUID) (*ScanOutcome, error)

	// UsageReport summarizes scan activity per card-holding membership.
	UsageReport(ctx context.Context) ([]*CardUsage, error)
}
