package handler

import (
	"log/slog"
	"net/http"

	"wellclub/internal/delivery/http/response"
	"wellclub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlanHandlerParams holds dependencies for PlanHandler, injected by Fx.
type PlanHandlerParams struct {
	fx.In

	PlanUC usecase.PlanUsecase
	Logger *slog.Logger
}

// PlanHandler holds dependencies for plan catalog handlers
type PlanHandler struct {
	planUC usecase.PlanUsecase
	logger *slog.Logger
}

// NewPlanHandler is the constructor for PlanHandler
func NewPlanHandler(params PlanHandlerParams) *PlanHandler {
	return &PlanHandler{
		planUC: params.PlanUC,
		logger: params.Logger,
	}
}

// PlanRequest represents the admin-editable fields of a plan
type PlanRequest struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description,omitempty"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	DurationYears int     `json:"duration_years" validate:"required,gt=0"`
	MaxMembers    int     `json:"max_members" validate:"required,gt=0"`
}

// ListPlans handles the public plan catalog listing
func (h *PlanHandler) ListPlans(c echo.Context) error {
	plans, err := h.planUC.ListPlans(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plans, "Plans retrieved successfully")
}

// CreatePlan handles adding a plan to the catalog
func (h *PlanHandler) CreatePlan(c echo.Context) error {
	var req PlanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plan input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	plan, err := h.planUC.CreatePlan(c.Request().Context(), usecase.PlanInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		DurationYears: req.DurationYears,
		MaxMembers:    req.MaxMembers,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, plan, "Plan created successfully")
}

// UpdatePlan handles editing an existing plan
func (h *PlanHandler) UpdatePlan(c echo.Context) error {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid plan ID")
	}

	var req PlanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plan input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	plan, err := h.planUC.UpdatePlan(c.Request().Context(), planID, usecase.PlanInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		DurationYears: req.DurationYears,
		MaxMembers:    req.MaxMembers,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, plan, "Plan updated successfully")
}
