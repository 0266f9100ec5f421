package usecase

import (
	"context"

	"wellclub/internal/domain/entity"

	"github.com/google/uuid"
)

// PlanInput carries the admin-editable fields of a plan.
type PlanInput struct {
	Name          string
	Description   string
	Price         float64
	DurationYears int
	MaxMembers    int
}

// PlanUsecase defines the membership plan catalog use cases.
type PlanUsecase interface {
	// ListPlans returns all purchasable plans.
	ListPlans(ctx context.Context) ([]*entity.Plan, error)

	// CreatePlan adds a plan to the catalog.
	CreatePlan(ctx context.Context, input PlanInput) (*entity.Plan, error)

	// UpdatePlan edits an existing plan.
	UpdatePlan(ctx context.Context, id uuid.UUID, input PlanInput) (*entity.Plan, error)
}
