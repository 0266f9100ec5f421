package handler

import (
	"log/slog"
	"net/http"

	"wellclub/internal/delivery/http/middleware"
	"wellclub/internal/delivery/http/response"
	"wellclub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MembershipHandlerParams holds dependencies for MembershipHandler, injected by Fx.
type MembershipHandlerParams struct {
	fx.In

	MembershipUC usecase.MembershipUsecase
	Logger       *slog.Logger
}

// MembershipHandler holds dependencies for membership lifecycle handlers
type MembershipHandler struct {
	membershipUC usecase.MembershipUsecase
	logger       *slog.Logger
}

// NewMembershipHandler is the constructor for MembershipHandler
func NewMembershipHandler(params MembershipHandlerParams) *MembershipHandler {
	return &MembershipHandler{
		membershipUC: params.MembershipUC,
		logger:       params.Logger,
	}
}

// PurchaseOrderRequest names the plan being bought.
type PurchaseOrderRequest struct {
	PlanID uuid.UUID `json:"plan_id" validate:"required"`
}

// ConfirmPurchaseRequest carries the gateway checkout callback fields.
type ConfirmPurchaseRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

// InviteBeneficiaryRequest names the invitee.
type InviteBeneficiaryRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty"`
}

// VerifyBeneficiaryRequest carries the enrollment code back.
type VerifyBeneficiaryRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required"`
}

// CreatePurchaseOrder handles opening a gateway order for a plan
func (h *MembershipHandler) CreatePurchaseOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PurchaseOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.membershipUC.CreatePurchaseOrder(c.Request().Context(), userID, req.PlanID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order, "Purchase order created successfully")
}

// ConfirmPurchase handles the checkout callback and membership creation
func (h *MembershipHandler) ConfirmPurchase(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ConfirmPurchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase confirmation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	membership, err := h.membershipUC.ConfirmPurchase(c.Request().Context(), userID, usecase.ConfirmPurchaseInput{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, membership, "Membership purchased successfully")
}

// InviteBeneficiary handles mailing an enrollment code to an invitee
func (h *MembershipHandler) InviteBeneficiary(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req InviteBeneficiaryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invitation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.membershipUC.InviteBeneficiary(c.Request().Context(), userID, req.Email, req.Name); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"email": req.Email}, "Invitation sent successfully")
}

// VerifyBeneficiary handles consuming the enrollment code
func (h *MembershipHandler) VerifyBeneficiary(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req VerifyBeneficiaryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	membership, err := h.membershipUC.VerifyBeneficiary(c.Request().Context(), userID, req.Email, req.Code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, membership, "Beneficiary enrolled successfully")
}

// MyMemberships handles listing the calling user's memberships
func (h *MembershipHandler) MyMemberships(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	memberships, err := h.membershipUC.MyMemberships(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, memberships, "Memberships retrieved successfully")
}

// MemberPass handles rendering the QR member pass
func (h *MembershipHandler) MemberPass(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pass, err := h.membershipUC.MemberPass(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Return pass as PNG image
	c.Response().Header().Set("Content-Disposition", "inline; filename=member-pass.png")

	return c.Blob(http.StatusOK, "image/png", pass)
}

// ListGroups handles the admin group listing
func (h *MembershipHandler) ListGroups(c echo.Context) error {
	groups, err := h.membershipUC.ListGroups(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, groups, "Membership groups retrieved successfully")
}

// Deactivate handles the admin soft-removal of a membership
func (h *MembershipHandler) Deactivate(c echo.Context) error {
	membershipID := c.Param("id")
	if membershipID == "" {
		return response.BadRequest(c, "INVALID_ID", "Membership id must not be empty")
	}

	if err := h.membershipUC.Deactivate(c.Request().Context(), membershipID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"membership_id": membershipID}, "Membership deactivated successfully")
}
