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

// RFIDHandlerParams holds dependencies for RFIDHandler, injected by Fx.
type RFIDHandlerParams struct {
	fx.In

	RFIDUC usecase.RFIDUsecase
	Logger *slog.Logger
}

// RFIDHandler holds dependencies for RFID card management handlers
type RFIDHandler struct {
	rfidUC usecase.RFIDUsecase
	logger *slog.Logger
}

// NewRFIDHandler is the constructor for RFIDHandler
func NewRFIDHandler(params RFIDHandlerParams) *RFIDHandler {
	return &RFIDHandler{
		rfidUC: params.RFIDUC,
		logger: params.Logger,
	}
}

// AssignCardRequest identifies a user by id or email and names the card to bind.
type AssignCardRequest struct {
	UserID     *uuid.UUID `json:"user_id,omitempty"`
	Email      string     `json:"email,omitempty" validate:"omitempty,email"`
	RFIDCardID string     `json:"rfid_card_id" validate:"required"`
}

// UnassignCardRequest identifies the user whose primary membership loses its card.
type UnassignCardRequest struct {
	UserID *uuid.UUID `json:"user_id,omitempty"`
	Email  string     `json:"email,omitempty" validate:"omitempty,email"`
}

// CheckAccessRequest pairs a user with a card for an access probe.
type CheckAccessRequest struct {
	UserID     uuid.UUID `json:"user_id" validate:"required"`
	RFIDCardID string    `json:"rfid_card_id" validate:"required"`
}

// AssignCard handles binding a card to a user's primary membership
func (h *RFIDHandler) AssignCard(c echo.Context) error {
	var req AssignCardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid card assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	identity := usecase.Identity{UserID: req.UserID, Email: req.Email}
	assignment, err := h.rfidUC.AssignCard(c.Request().Context(), identity, req.RFIDCardID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, assignment, "RFID card assigned successfully")
}

// UnassignCard handles removing a card from a user's primary membership
func (h *RFIDHandler) UnassignCard(c echo.Context) error {
	var req UnassignCardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid card removal input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	identity := usecase.Identity{UserID: req.UserID, Email: req.Email}
	assignment, err := h.rfidUC.UnassignCard(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, assignment, "RFID card removed successfully")
}

// CheckAccess handles probing whether a user may use a card
func (h *RFIDHandler) CheckAccess(c echo.Context) error {
	var req CheckAccessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid access check input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.rfidUC.CheckAccess(c.Request().Context(), req.UserID, req.RFIDCardID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Access check completed")
}

// ListCardAccess handles enumerating everyone with access to a card
func (h *RFIDHandler) ListCardAccess(c echo.Context) error {
	cardID := c.Param("rfidCardId")
	if cardID == "" {
		return response.BadRequest(c, "RFID_CARD_ID_REQUIRED", "RFID card id must not be empty")
	}

	list, err := h.rfidUC.ListCardAccess(c.Request().Context(), cardID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, list, "Card access list retrieved successfully")
}
