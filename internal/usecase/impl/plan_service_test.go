package impl

import (
	"context"
	"testing"

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

func TestPlanService_ListPlans(t *testing.T) {
	mockPlanRepo := mockRepo.NewMockPlanRepository(t)
	service := NewPlanService(mockPlanRepo, newTestLogger())

	ctx := context.Background()
	plans := []*entity.Plan{yearlyPlan()}

	mockPlanRepo.EXPECT().FindActive(ctx).Return(plans, nil)

	got, err := service.ListPlans(ctx)
	require.NoError(t, err)
	assert.Equal(t, plans, got)
}

func TestPlanService_CreatePlan(t *testing.T) {
	mockPlanRepo := mockRepo.NewMockPlanRepository(t)
	service := NewPlanService(mockPlanRepo, newTestLogger())

	ctx := context.Background()
	mockPlanRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Plan")).Return(nil)

	plan, err := service.CreatePlan(ctx, usecase.PlanInput{
		Name:          "Couple Annual",
		Price:         6999,
		DurationYears: 1,
		MaxMembers:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Couple Annual", plan.Name)
	assert.True(t, plan.IsActive)
	assert.NotEqual(t, uuid.Nil, plan.ID)
}

func TestPlanService_UpdatePlan(t *testing.T) {
	mockPlanRepo := mockRepo.NewMockPlanRepository(t)
	service := NewPlanService(mockPlanRepo, newTestLogger())

	ctx := context.Background()
	existing := yearlyPlan()

	mockPlanRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	mockPlanRepo.EXPECT().Update(ctx, existing).Return(nil)

	plan, err := service.UpdatePlan(ctx, existing.ID, usecase.PlanInput{
		Name:          "Family Annual v2",
		Price:         5499,
		DurationYears: 1,
		MaxMembers:    5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Family Annual v2", plan.Name)
	assert.Equal(t, 5499.0, plan.Price)
	assert.Equal(t, 5, plan.MaxMembers)
}

func TestPlanService_UpdatePlan_NotFound(t *testing.T) {
	mockPlanRepo := mockRepo.NewMockPlanRepository(t)
	service := NewPlanService(mockPlanRepo, newTestLogger())

	ctx := context.Background()
	planID := uuid.New()

	mockPlanRepo.EXPECT().FindByID(ctx, planID).Return(nil, repository.ErrPlanNotFound)

	plan, err := service.UpdatePlan(ctx, planID, usecase.PlanInput{Name: "x"})
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, domainerrors.ErrPlanNotFound)
}
