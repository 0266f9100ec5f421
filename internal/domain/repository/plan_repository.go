// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wellclub/internal/domain/entity"
	"wellclub/internal/errors"

	"github.com/google/uuid"
)

// ErrPlanNotFound is returned when a membership plan is not found.
var ErrPlanNotFound = errors.New("plan not found")

// PlanRepository defines the interface for membership plan persistence.
// Plans are reference data: created and edited by admins, read everywhere else.
type PlanRepository interface {
	// FindByID retrieves a plan by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Plan, error)

	// FindActive retrieves all purchasable plans, cheapest first.
	FindActive(ctx context.Context) ([]*entity.Plan, error)

	// Create persists a new plan.
	Create(ctx context.Context, plan *entity.Plan) error

	// Update modifies an existing plan.
	Update(ctx context.Context, plan *entity.Plan) error
}
