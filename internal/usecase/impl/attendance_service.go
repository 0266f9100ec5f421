package impl

import (
	"context"
	"log/slog"
	"time"

	"wellclub/config"
	"wellclub/internal/domain/entity"
	domainerrors "wellclub/internal/domain/errors"
	"wellclub/internal/domain/repository"
	"wellclub/internal/errors"
	"wellclub/internal/usecase"

	"github.com/google/uuid"
)

// recentScanWindow bounds the "recent scans" column of the usage report.
const recentScanWindow = 7 * 24 * time.Hour

// usageReportScanLimit caps how much history is read per card for the report.
const usageReportScanLimit = 100

type attendanceService struct {
	membershipRepo repository.MembershipRepository
	rfidUC         usecase.RFIDUsecase
	txManager      repository.TransactionManager
	cooldown       time.Duration
	logger         *slog.Logger
}

// NewAttendanceService creates a new attendance scan service instance.
func NewAttendanceService(
	membershipRepo repository.MembershipRepository,
	rfidUC usecase.RFIDUsecase,
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AttendanceUsecase {
	return &attendanceService{
		membershipRepo: membershipRepo,
		rfidUC:         rfidUC,
		txManager:      txManager,
		cooldown:       cfg.Membership.ScanCooldown,
		logger:         logger,
	}
}

// RecordScan validates and records a single RFID tap.
//
// Validation order is fixed: card exists, membership active, membership not
// expired, cooldown, then (only when a user id was supplied) group access.
// A cooldown violation is returned as a Success=false outcome, never an
// error. Two concurrent taps inside the window cannot both succeed: the
// write is conditional on the last scan time observed here, and a failed
// condition is re-derived into a cooldown rejection.
func (s *attendanceService) RecordScan(ctx context.Context, cardID string, userID *uuid.UUID) (*usecase.ScanOutcome, error) {
	if cardID == "" {
		return nil, domainerrors.ErrCardIDRequired
	}

	membership, err := s.membershipRepo.FindByCardID(ctx, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, domainerrors.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find card holder")
	}

	if !membership.IsActive {
		return nil, domainerrors.ErrMembershipInactive
	}

	now := time.Now()
	if membership.IsExpired(now) {
		return nil, domainerrors.ErrMembershipExpired
	}

	status := entity.ScanEligibility(membership.LastScanAt, now, s.cooldown)
	if !status.Ready {
		return rejectionOutcome(membership.ID, status), nil
	}

	// Anonymous kiosk taps skip the access check: the card's membership has
	// already been validated above.
	if userID != nil {
		access, err := s.rfidUC.CheckAccess(ctx, *userID, cardID)
		if err != nil {
			return nil, err
		}
		if !access.HasAccess {
			return nil, domainerrors.ErrScanAccessDenied
		}
	}

	scan := &entity.ScanRecord{
		ID:           uuid.New(),
		MembershipID: membership.ID,
		CardID:       cardID,
		UserID:       userID,
		ScannedAt:    now,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewMembershipRepository().RecordScan(ctx, scan, membership.LastScanAt)
	})
	if err != nil {
		if errors.Is(err, repository.ErrScanConflict) {
			// A concurrent tap committed between our read and our write.
			// Re-read and report the cooldown that now applies.
			return s.conflictOutcome(ctx, cardID, membership.ID)
		}

		return nil, errors.Wrap(err, "failed to record scan")
	}

	s.logger.Info("attendance scan recorded",
		slog.String("card_id", cardID),
		slog.String("membership_id", membership.ID),
		slog.Int64("scan_count", membership.ScanCount+1),
	)

	return &usecase.ScanOutcome{
		Success:      true,
		MembershipID: membership.ID,
		Message:      "Attendance recorded",
		ScanCount:    membership.ScanCount + 1,
		ScannedAt:    &scan.ScannedAt,
	}, nil
}

// conflictOutcome re-derives the cooldown state after losing a concurrent
// write race. The fresh read reflects the winning scan's timestamp.
func (s *attendanceService) conflictOutcome(ctx context.Context, cardID, membershipID string) (*usecase.ScanOutcome, error) {
	membership, err := s.membershipRepo.FindByCardID(ctx, cardID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read membership after scan conflict")
	}

	status := entity.ScanEligibility(membership.LastScanAt, time.Now(), s.cooldown)
	if status.Ready {
		// The winner's scan already aged out; extremely unlikely but treat
		// it as a plain rejection with no remaining wait.
		return &usecase.ScanOutcome{
			Success:      false,
			MembershipID: membershipID,
			Message:      "Scan superseded by a concurrent tap; please tap again",
		}, nil
	}

	return rejectionOutcome(membershipID, status), nil
}

func rejectionOutcome(membershipID string, status entity.ScanStatus) *usecase.ScanOutcome {
	next := status.NextAllowedAt

	return &usecase.ScanOutcome{
		Success:       false,
		MembershipID:  membershipID,
		Message:       "Scan not allowed yet; next scan available in " + status.RemainingPhrase(),
		NextAllowedAt: &next,
		RemainingMs:   status.Remaining.Milliseconds(),
	}
}

// UsageReport summarizes attendance per card-holding membership.
func (s *attendanceService) UsageReport(ctx context.Context) ([]*usecase.CardUsage, error) {
	holders, err := s.membershipRepo.FindCardHolders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list card holders")
	}

	cutoff := time.Now().Add(-recentScanWindow)
	report := make([]*usecase.CardUsage, 0, len(holders))

	for _, holder := range holders {
		scans, err := s.membershipRepo.FindScans(ctx, holder.ID, usageReportScanLimit)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load scans for membership %s", holder.ID)
		}

		recent := 0
		for _, scan := range scans {
			if scan.ScannedAt.After(cutoff) {
				recent++
			}
		}

		report = append(report, &usecase.CardUsage{
			MembershipID: holder.ID,
			CardID:       derefString(holder.RFIDCardID),
			UserID:       holder.UserID,
			ScanCount:    holder.ScanCount,
			LastScanAt:   holder.LastScanAt,
			RecentScans:  recent,
		})
	}

	return report, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
