package impl

import (
	"context"
	"testing"
	"time"

	"wellclub/config"
	"wellclub/internal/domain/entity"
	domainerrors "wellclub/internal/domain/errors"
	"wellclub/internal/domain/repository"
	mockRepo "wellclub/internal/mocks/repository"
	"wellclub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func attendanceConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Membership = &config.MembershipConfig{ScanCooldown: 6 * time.Hour}

	return cfg
}

func newAttendanceFixture(t *testing.T) (*mockRepo.MockMembershipRepository, *mockRepo.MockUserRepository, *mockRepo.MockTransactionManager, usecase.AttendanceUsecase) {
	t.Helper()

	mockMembershipRepo := mockRepo.NewMockMembershipRepository(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockTx := mockRepo.NewMockTransactionManager(t)
	rfidUC := NewRFIDService(mockUserRepo, mockMembershipRepo, mockTx, newTestLogger())
	service := NewAttendanceService(mockMembershipRepo, rfidUC, mockTx, attendanceConfig(), newTestLogger())

	return mockMembershipRepo, mockUserRepo, mockTx, service
}

func cardHolder(card string) *entity.Membership {
	holder := newPrimaryMembership("WC-2026-AAAA1111", uuid.New())
	holder.RFIDCardID = &card

	return holder
}

func TestAttendanceService_RecordScan_FirstScanSucceeds(t *testing.T) {
	mockMembershipRepo, _, mockTx, service := newAttendanceFixture(t)

	ctx := context.Background()
	holder := cardHolder("CARD-001")
	holder.ScanCount = 4

	mockMembershipRepo.EXPECT().FindByCardID(ctx, "CARD-001").Return(holder, nil)
	mockMembershipRepo.EXPECT().
		RecordScan(ctx, mock.AnythingOfType("*entity.ScanRecord"), (*time.Time)(nil)).
		Return(nil)
	expectTransaction(t, mockTx, mockMembershipRepo)

	outcome, err := service.RecordScan(ctx, "CARD-001", nil)
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, holder.ID, outcome.MembershipID)
	assert.Equal(t, int64(5), outcome.ScanCount)
	assert.NotNil(t, outcome.ScannedAt)
}

func TestAttendanceService_RecordScan_EmptyCardID(t *testing.T) {
	_, _, _, service := newAttendanceFixture(t)

	outcome, err := service.RecordScan(context.Background(), "", nil)
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domainerrors.ErrCardIDRequired)
}

func TestAttendanceService_RecordScan_UnknownCard(t *testing.T) {
	mockMembershipRepo, _, _, service := newAttendanceFixture(t)

	ctx := context.Background()
	mockMembershipRepo.EXPECT().FindByCardID(ctx, "CARD-404").Return(nil, repository.ErrCardNotFound)

	outcome, err := service.RecordScan(ctx, "CARD-404", nil)
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domainerrors.ErrCardNotFound)
}

func TestAttendanceService_RecordScan_InactiveBeforeCooldown(t *testing.T) {
	mockMembershipRepo, _, _, service := newAttendanceFixture(t)

	ctx := context.Background()
	holder := cardHolder("CARD-001")
	holder.IsActive = false
	// Even with a hot cooldown the inactive check fires first.
	last := time.Now().Add(-time.Minute)
	holder.LastScanAt = &last

	mockMembershipRepo.EXPECT().FindByCardID(ctx, "CARD-001").Return(holder, nil)

	outcome, err := service.RecordScan(ctx, "CARD-001", nil)
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domainerrors.ErrMembershipInactive)
}

func TestAttendanceService_RecordScan_ExpiredBeforeCooldown(t *testing.T) {
	mockMembershipRepo, _, _, service := newAttendanceFixture(t)

	ctx := context.Background()
	holder := cardHolder("CARD-001")
	holder.EndDate = time.Now().Add(-24 * time.Hour)
	last := time.Now().Add(-time.Minute)
	holder.LastScanAt = &last

	mockMembershipRepo.EXPECT().FindByCardID(ctx, "CARD-001").Return(holder, nil)

	outcome, err := service.RecordScan(ctx, "CARD-001", nil)
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domainerrors.ErrMembershipExpired)
}

func TestAttendanceService_RecordScan_CooldownRejection(t *testing.T) {
	mockMembershipRepo, _, _, service := newAttendanceFixture(t)

	ctx := context.Background()
	holder := cardHolder("CARD-001")
	last := time.Now().Add(-1 * time.Minute)
	holder.LastScanAt = &last

	mockMembershipRepo.EXPECT().FindByCardID(ctx, "CARD-001").Return(holder, nil)

	outcome, err := service.RecordScan(ctx, "CARD-001", nil)
	require.NoError(t, err, "cooldown rejection is an outcome, not an error")
	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Message, "5 hour(s) and 5")
	assert.NotNil(t, outcome.NextAllowedAt)
	assert.Positive(t, outcome.RemainingMs)
}

func TestAttendanceService_RecordScan_AuthorizedUser(t *testing.T) {
	mockMembershipRepo, _, mockTx, service := newAttendanceFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	holder := cardHolder("CARD-001")
	holder.UserID = userID

	// FindByCardID runs once for the scan and once inside CheckAccess.
	mockMembershipRepo.EXPECT().FindByCardID(ctx, "CARD-001").Return(holder, nil).Times(2)
	mockMembershipRepo.EXPECT().FindActiveByUser(ctx, userID).Return(holder, nil)
	mockMembershipRepo.EXPECT().
		RecordScan(ctx, mock.AnythingOfType("*entity.ScanRecord"), (*time.Time)(nil)).
		Return(nil)
	expectTransaction(t, mockTx, mockMembershipRepo)

	outcome, err := service.RecordScan(ctx, "CARD-001", &userID)
	require.NoError(t, err)
	assert.True(t, outcome.Success)
}

func TestAttendanceService_RecordScan_UnauthorizedUser(t *testing.T) {
	mockMembershipRepo, _, _, service := newAttendanceFixture(t)

	ctx := context.Background()
	userID := uuid.New()
	holder := cardHolder("CARD-001")
	stranger := newPrimaryMembership("WC-2026-ZZZZ9999", userID)

	mockMembershipRepo.EXPECT().FindByCardID(ctx, "CARD-001").Return(holder, nil).Times(2)
	mockMembershipRepo.EXPECT().FindActiveByUser(ctx, userID).Return(stranger, nil)

	outcome, err := service.RecordScan(ctx, "CARD-001", &userID)
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domainerrors.ErrScanAccessDenied)
}

func TestAttendanceService_RecordScan_ConflictRederivesCooldown(t *testing.T) {
	mockMembershipRepo, _, mockTx, service := newAttendanceFixture(t)

	ctx := context.Background()
	holder := cardHolder("CARD-001")

	// The concurrent winner's scan is visible on the re-read.
	winner := cardHolder("CARD-001")
	winner.ID = holder.ID
	winnerScan := time.Now().Add(-2 * time.Second)
	winner.LastScanAt = &winnerScan
	winner.ScanCount = 1

	first := mockMembershipRepo.EXPECT().FindByCardID(ctx, "CARD-001").Return(holder, nil).Once()
	mockMembershipRepo.EXPECT().FindByCardID(ctx, "CARD-001").Return(winner, nil).Once().NotBefore(first)
	mockMembershipRepo.EXPECT().
		RecordScan(ctx, mock.AnythingOfType("*entity.ScanRecord"), (*time.Time)(nil)).
		Return(repository.ErrScanConflict)
	expectTransaction(t, mockTx, mockMembershipRepo)

	outcome, err := service.RecordScan(ctx, "CARD-001", nil)
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Equal(t, holder.ID, outcome.MembershipID)
	assert.NotNil(t, outcome.NextAllowedAt)
}

func TestAttendanceService_UsageReport(t *testing.T) {
	mockMembershipRepo, _, _, service := newAttendanceFixture(t)

	ctx := context.Background()
	holder := cardHolder("CARD-001")
	lastScan := time.Now().Add(-2 * time.Hour)
	holder.LastScanAt = &lastScan
	holder.ScanCount = 12

	recentScan := &entity.ScanRecord{MembershipID: holder.ID, ScannedAt: time.Now().Add(-24 * time.Hour)}
	oldScan := &entity.ScanRecord{MembershipID: holder.ID, ScannedAt: time.Now().Add(-30 * 24 * time.Hour)}

	mockMembershipRepo.EXPECT().FindCardHolders(ctx).Return([]*entity.Membership{holder}, nil)
	mockMembershipRepo.EXPECT().FindScans(ctx, holder.ID, 100).Return([]*entity.ScanRecord{recentScan, oldScan}, nil)

	report, err := service.UsageReport(ctx)
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, "CARD-001", report[0].CardID)
	assert.Equal(t, int64(12), report[0].ScanCount)
	assert.Equal(t, 1, report[0].RecentScans)
}

func TestAttendanceService_UsageReport_NoCardHolders(t *testing.T) {
	mockMembershipRepo, _, _, service := newAttendanceFixture(t)

	mockMembershipRepo.EXPECT().FindCardHolders(context.Background()).Return(nil, nil)

	report, err := service.UsageReport(context.Background())
	require.NoError(t, err)
	assert.Empty(t, report)
}
