package impl

import (
	"context"
	"log/slog"

	"wellclub/internal/domain/entity"
	domainerrors "wellclub/internal/domain/errors"
	"wellclub/internal/domain/repository"
	"wellclub/internal/errors"
	"wellclub/internal/usecase"

	"github.com/google/uuid"
)

type planService struct {
	planRepo repository.PlanRepository
	logger   *slog.Logger
}

// NewPlanService creates a new plan catalog service instance.
func NewPlanService(planRepo repository.PlanRepository, logger *slog.Logger) usecase.PlanUsecase {
	return &planService{
		planRepo: planRepo,
		logger:   logger,
	}
}

// ListPlans returns all purchasable plans.
func (s *planService) ListPlans(ctx context.Context) ([]*entity.Plan, error) {
	plans, err := s.planRepo.FindActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	return plans, nil
}

// CreatePlan adds a plan to the catalog.
func (s *planService) CreatePlan(ctx context.Context, input usecase.PlanInput) (*entity.Plan, error) {
	plan := &entity.Plan{
		ID:            uuid.New(),
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		DurationYears: input.DurationYears,
		MaxMembers:    input.MaxMembers,
		IsActive:      true,
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, errors.Wrap(err, "failed to create plan")
	}

	s.logger.Info("plan created",
		slog.String("plan_id", plan.ID.String()),
		slog.String("name", plan.Name),
	)

	return plan, nil
}

// UpdatePlan edits an existing plan.
func (s *planService) UpdatePlan(ctx context.Context, id uuid.UUID, input usecase.PlanInput) (*entity.Plan, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			return nil, domainerrors.ErrPlanNotFound
		}

		return nil, errors.Wrap(err, "failed to find plan")
	}

	plan.Name = input.Name
	plan.Description = input.Description
	plan.Price = input.Price
	plan.DurationYears = input.DurationYears
	plan.MaxMembers = input.MaxMembers

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, errors.Wrap(err, "failed to update plan")
	}

	return plan, nil
}
