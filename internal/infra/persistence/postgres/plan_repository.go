// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"wellclub/internal/domain/entity"
	domainerrors "wellclub/internal/domain/errors"
	"wellclub/internal/domain/repository"
	"wellclub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// planRepository implements the repository.PlanRepository interface.
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository is the constructor for planRepository.
func NewPlanRepository(db *gorm.DB) repository.PlanRepository {
	return &planRepository{
		db: db,
	}
}

// FindByID retrieves a plan by its unique ID.
func (repo *planRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error) {
	var planM model.PlanModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&planM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan by ID")
	}

	return toPlanDomain(&planM), nil
}

// FindActive retrieves all purchasable plans, cheapest first.
func (repo *planRepository) FindActive(ctx context.Context) ([]*entity.Plan, error) {
	var planModels []*model.PlanModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price ASC").
		Find(&planModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active plans")
	}

	plans := make([]*entity.Plan, 0, len(planModels))
	for _, planM := range planModels {
		plans = append(plans, toPlanDomain(planM))
	}

	return plans, nil
}

// Create persists a new plan.
func (repo *planRepository) Create(ctx context.Context, plan *entity.Plan) error {
	planM := fromPlanDomain(plan)

	if err := repo.db.WithContext(ctx).Create(planM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required plan information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create plan")
	}

	plan.ID = planM.ID
	plan.CreatedAt = planM.CreatedAt
	plan.UpdatedAt = planM.UpdatedAt

	return nil
}

// Update modifies an existing plan.
func (repo *planRepository) Update(ctx context.Context, plan *entity.Plan) error {
	planM := fromPlanDomain(plan)

	result := repo.db.WithContext(ctx).
		Model(&model.PlanModel{}).
		Where("id = ?", plan.ID).
		Updates(planM)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update plan")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPlanNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toPlanDomain converts a GORM PlanModel to a domain Plan entity.
func toPlanDomain(data *model.PlanModel) *entity.Plan {
	if data == nil {
		return nil
	}

	return &entity.Plan{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		DurationYears: data.DurationYears,
		MaxMembers:    data.MaxMembers,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromPlanDomain converts a domain Plan entity to a GORM PlanModel.
func fromPlanDomain(data *entity.Plan) *model.PlanModel {
	if data == nil {
		return nil
	}

	return &model.PlanModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Price:         data.Price,
		DurationYears: data.DurationYears,
		MaxMembers:    data.MaxMembers,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
