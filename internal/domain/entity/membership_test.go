package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScanEligibility_NoPriorScan(t *testing.T) {
	now := time.Now()

	status := ScanEligibility(nil, now, 6*time.Hour)
	assert.True(t, status.Ready)
	assert.Zero(t, status.Remaining)
	assert.True(t, status.NextAllowedAt.IsZero())

	zero := time.Time{}
	status = ScanEligibility(&zero, now, 6*time.Hour)
	assert.True(t, status.Ready)
}

func TestScanEligibility_InsideCooldown(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	last := now.Add(-1 * time.Minute)

	status := ScanEligibility(&last, now, 6*time.Hour)
	assert.False(t, status.Ready)
	assert.Equal(t, 6*time.Hour-time.Minute, status.Remaining)
	assert.Equal(t, last.Add(6*time.Hour), status.NextAllowedAt)
}

func TestScanEligibility_ExactBoundary(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	last := now.Add(-6 * time.Hour)

	// A scan at exactly lastScanAt + cooldown is allowed.
	status := ScanEligibility(&last, now, 6*time.Hour)
	assert.True(t, status.Ready)
}

func TestScanEligibility_OneNanosecondEarly(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	last := now.Add(-6*time.Hour + time.Nanosecond)

	status := ScanEligibility(&last, now, 6*time.Hour)
	assert.False(t, status.Ready)
	assert.Equal(t, time.Duration(time.Nanosecond), status.Remaining)
}

func TestScanEligibility_AfterCooldown(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	last := now.Add(-7 * time.Hour)

	status := ScanEligibility(&last, now, 6*time.Hour)
	assert.True(t, status.Ready)
}

func TestScanStatus_RemainingPhrase(t *testing.T) {
	tests := []struct {
		name      string
		remaining time.Duration
		want      string
	}{
		{"hours and minutes", 5*time.Hour + 59*time.Minute, "5 hour(s) and 59 minute(s)"},
		{"minutes only", 42 * time.Minute, "0 hour(s) and 42 minute(s)"},
		{"sub-minute floors to zero", 30 * time.Second, "0 hour(s) and 0 minute(s)"},
		{"seconds past the minute are dropped", time.Hour + time.Minute + 59*time.Second, "1 hour(s) and 1 minute(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := ScanStatus{Remaining: tt.remaining}
			assert.Equal(t, tt.want, status.RemainingPhrase())
		})
	}
}

func TestMembership_IsBeneficiary(t *testing.T) {
	parent := "WC-2026-AABBCCDD"
	empty := ""

	assert.True(t, (&Membership{ParentMembershipID: &parent}).IsBeneficiary())
	assert.False(t, (&Membership{ParentMembershipID: &empty}).IsBeneficiary())
	assert.False(t, (&Membership{}).IsBeneficiary())
}

func TestMembership_IsExpired(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, (&Membership{EndDate: now.Add(-time.Hour)}).IsExpired(now))
	assert.False(t, (&Membership{EndDate: now.Add(time.Hour)}).IsExpired(now))
	// The end instant itself is still valid.
	assert.False(t, (&Membership{EndDate: now}).IsExpired(now))
}

func TestMembership_HoldsCard(t *testing.T) {
	card := "CARD-001"
	empty := ""

	assert.True(t, (&Membership{RFIDCardID: &card}).HoldsCard())
	assert.False(t, (&Membership{RFIDCardID: &empty}).HoldsCard())
	assert.False(t, (&Membership{}).HoldsCard())
}
