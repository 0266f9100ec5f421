// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"wellclub/internal/domain/entity"
	domainerrors "wellclub/internal/domain/errors"
	"wellclub/internal/domain/repository"
	"wellclub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// membershipRepository implements the repository.MembershipRepository interface.
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository is the constructor for membershipRepository.
func NewMembershipRepository(db *gorm.DB) repository.MembershipRepository {
	return &membershipRepository{
		db: db,
	}
}

// FindByID retrieves a membership by its business identifier.
func (repo *membershipRepository) FindByID(ctx context.Context, id string) (*entity.Membership, error) {
	var membershipM model.MembershipModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&membershipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find membership by ID")
	}

	return toMembershipDomain(&membershipM), nil
}

// FindByCardID retrieves the membership currently holding the given RFID card.
func (repo *membershipRepository) FindByCardID(ctx context.Context, cardID string) (*entity.Membership, error) {
	var membershipM model.MembershipModel

	if err := repo.db.WithContext(ctx).
		Where("rfid_card_id = ?", cardID).
		First(&membershipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find membership by card ID")
	}

	return toMembershipDomain(&membershipM), nil
}

// FindActiveByUser retrieves the user's currently active membership. The
// most recently started one wins when several are active, keeping the
// result deterministic.
func (repo *membershipRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*entity.Membership, error) {
	var membershipM model.MembershipModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("start_date DESC").
		First(&membershipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMembershipNotFound
		}

		return nil, errors.Wrap(err, "failed to find active membership by user")
	}

	return toMembershipDomain(&membershipM), nil
}

// FindByUser retrieves all memberships owned by a user, newest first.
func (repo *membershipRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Membership, error) {
	var membershipModels []*model.MembershipModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&membershipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find memberships by user")
	}

	return toMembershipDomainSlice(membershipModels), nil
}

// FindBeneficiaries retrieves all memberships whose parent is the given
// primary membership id.
func (repo *membershipRepository) FindBeneficiaries(ctx context.Context, primaryID string) ([]*entity.Membership, error) {
	var membershipModels []*model.MembershipModel

	if err := repo.db.WithContext(ctx).
		Where("parent_membership_id = ?", primaryID).
		Order("created_at ASC").
		Find(&membershipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find beneficiaries")
	}

	return toMembershipDomainSlice(membershipModels), nil
}

// FindPrimaries retrieves every membership that roots a group: primaries
// plus standalone records with no parent.
func (repo *membershipRepository) FindPrimaries(ctx context.Context) ([]*entity.Membership, error) {
	var membershipModels []*model.MembershipModel

	if err := repo.db.WithContext(ctx).
		Where("is_primary = ? OR parent_membership_id IS NULL", true).
		Order("created_at ASC").
		Find(&membershipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find primary memberships")
	}

	return toMembershipDomainSlice(membershipModels), nil
}

// FindCardHolders retrieves every membership with an RFID card assigned.
func (repo *membershipRepository) FindCardHolders(ctx context.Context) ([]*entity.Membership, error) {
	var membershipModels []*model.MembershipModel

	if err := repo.db.WithContext(ctx).
		Where("rfid_card_id IS NOT NULL").
		Order("created_at ASC").
		Find(&membershipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find card holders")
	}

	return toMembershipDomainSlice(membershipModels), nil
}

// CountGroupMembers returns the group size: the primary itself plus all
// memberships referencing it as parent.
func (repo *membershipRepository) CountGroupMembers(ctx context.Context, primaryID string) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.MembershipModel{}).
		Where("id = ? OR parent_membership_id = ?", primaryID, primaryID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count group members")
	}

	return count, nil
}

// Create persists a new membership.
func (repo *membershipRepository) Create(ctx context.Context, membership *entity.Membership) error {
	membershipM := fromMembershipDomain(membership)

	if err := repo.db.WithContext(ctx).Create(membershipM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrMembershipNotFound.WrapMessage("membership id collision")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user or plan reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required membership information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create membership")
	}

	membership.CreatedAt = membershipM.CreatedAt
	membership.UpdatedAt = membershipM.UpdatedAt

	return nil
}

// ClearCardID removes the card binding from whichever membership holds
// cardID. Touching zero rows is fine: the card was simply unassigned.
func (repo *membershipRepository) ClearCardID(ctx context.Context, cardID string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.MembershipModel{}).
		Where("rfid_card_id = ?", cardID).
		Update("rfid_card_id", nil).Error; err != nil {
		return errors.Wrap(err, "failed to clear card binding")
	}

	return nil
}

// SetCardID binds cardID to the given membership.
func (repo *membershipRepository) SetCardID(ctx context.Context, membershipID, cardID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MembershipModel{}).
		Where("id = ?", membershipID).
		Update("rfid_card_id", cardID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set card binding")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMembershipNotFound
	}

	return nil
}

// RemoveCardID unbinds any card from the given membership. Idempotent.
func (repo *membershipRepository) RemoveCardID(ctx context.Context, membershipID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MembershipModel{}).
		Where("id = ?", membershipID).
		Update("rfid_card_id", nil)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to remove card binding")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMembershipNotFound
	}

	return nil
}

// SetActive flips the soft-removal flag.
func (repo *membershipRepository) SetActive(ctx context.Context, membershipID string, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MembershipModel{}).
		Where("id = ?", membershipID).
		Update("is_active", active)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update membership status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMembershipNotFound
	}

	return nil
}

// RecordScan appends the scan record and advances the scan state in one
// pass. The membership update is guarded on last_scan_at still holding the
// value the caller observed, so two taps racing inside the cooldown window
// cannot both commit; the loser gets ErrScanConflict.
func (repo *membershipRepository) RecordScan(ctx context.Context, scan *entity.ScanRecord, prevLastScanAt *time.Time) error {
	query := repo.db.WithContext(ctx).
		Model(&model.MembershipModel{}).
		Where("id = ?", scan.MembershipID)

	if prevLastScanAt == nil {
		query = query.Where("last_scan_at IS NULL")
	} else {
		query = query.Where("last_scan_at = ?", *prevLastScanAt)
	}

	result := query.Updates(map[string]any{
		"last_scan_at": scan.ScannedAt,
		"scan_count":   gorm.Expr("scan_count + 1"),
	})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update scan state")
	}

	if result.RowsAffected == 0 {
		return repository.ErrScanConflict
	}

	scanM := fromScanRecordDomain(scan)
	if err := repo.db.WithContext(ctx).Create(scanM).Error; err != nil {
		return errors.Wrap(err, "failed to append scan record")
	}

	return nil
}

// FindScans retrieves the most recent scan records for a membership,
// newest first, capped at limit.
func (repo *membershipRepository) FindScans(ctx context.Context, membershipID string, limit int) ([]*entity.ScanRecord, error) {
	var scanModels []*model.ScanRecordModel

	if err := repo.db.WithContext(ctx).
		Where("membership_id = ?", membershipID).
		Order("scanned_at DESC").
		Limit(limit).
		Find(&scanModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find scan records")
	}

	scans := make([]*entity.ScanRecord, 0, len(scanModels))
	for _, scanM := range scanModels {
		scans = append(scans, toScanRecordDomain(scanM))
	}

	return scans, nil
}

// --- Mapper Functions ---

// toMembershipDomain converts a GORM MembershipModel to a domain Membership entity.
func toMembershipDomain(data *model.MembershipModel) *entity.Membership {
	if data == nil {
		return nil
	}

	return &entity.Membership{
		ID:                 data.ID,
		UserID:             data.UserID,
		PlanID:             data.PlanID,
		StartDate:          data.StartDate,
		EndDate:            data.EndDate,
		IsActive:           data.IsActive,
		IsPrimary:          data.IsPrimary,
		ParentMembershipID: data.ParentMembershipID,
		RFIDCardID:         data.RFIDCardID,
		LastScanAt:         data.LastScanAt,
		ScanCount:          data.ScanCount,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func toMembershipDomainSlice(data []*model.MembershipModel) []*entity.Membership {
	memberships := make([]*entity.Membership, 0, len(data))
	for _, membershipM := range data {
		memberships = append(memberships, toMembershipDomain(membershipM))
	}

	return memberships
}

// fromMembershipDomain converts a domain Membership entity to a GORM MembershipModel.
func fromMembershipDomain(data *entity.Membership) *model.MembershipModel {
	if data == nil {
		return nil
	}

	return &model.MembershipModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		PlanID:             data.PlanID,
		StartDate:          data.StartDate,
		EndDate:            data.EndDate,
		IsActive:           data.IsActive,
		IsPrimary:          data.IsPrimary,
		ParentMembershipID: data.ParentMembershipID,
		RFIDCardID:         data.RFIDCardID,
		LastScanAt:         data.LastScanAt,
		ScanCount:          data.ScanCount,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// toScanRecordDomain converts a GORM ScanRecordModel to a domain ScanRecord entity.
func toScanRecordDomain(data *model.ScanRecordModel) *entity.ScanRecord {
	if data == nil {
		return nil
	}

	return &entity.ScanRecord{
		ID:           data.ID,
		MembershipID: data.MembershipID,
		CardID:       data.CardID,
		UserID:       data.UserID,
		ScannedAt:    data.ScannedAt,
	}
}

// fromScanRecordDomain converts a domain ScanRecord entity to a GORM ScanRecordModel.
func fromScanRecordDomain(data *entity.ScanRecord) *model.ScanRecordModel {
	if data == nil {
		return nil
	}

	return &model.ScanRecordModel{
		ID:           data.ID,
		MembershipID: data.MembershipID,
		CardID:       data.CardID,
		UserID:       data.UserID,
		ScannedAt:    data.ScannedAt,
	}
}
