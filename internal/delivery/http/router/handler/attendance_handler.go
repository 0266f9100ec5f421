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

// AttendanceHandlerParams holds dependencies for AttendanceHandler, injected by Fx.
type AttendanceHandlerParams struct {
	fx.In

	AttendanceUC usecase.AttendanceUsecase
	Logger       *slog.Logger
}

// AttendanceHandler holds dependencies for attendance scan handlers
type AttendanceHandler struct {
	attendanceUC usecase.AttendanceUsecase
	logger       *slog.Logger
}

// NewAttendanceHandler is the constructor for AttendanceHandler
func NewAttendanceHandler(params AttendanceHandlerParams) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceUC: params.AttendanceUC,
		logger:       params.Logger,
	}
}

// TapRequest is the kiosk reader's payload. user_id is optional: readers
// that resolve the member client-side send it to enforce group access.
type TapRequest struct {
	RFIDCardID string     `json:"rfid_card_id" validate:"required"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
}

// RecordTap handles one RFID tap from a reader
func (h *AttendanceHandler) RecordTap(c echo.Context) error {
	var req TapRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tap input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	outcome, err := h.attendanceUC.RecordScan(c.Request().Context(), req.RFIDCardID, req.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Cooldown rejections ride a 200: the tap was processed, the outcome
	// payload says it was refused and when the next one is allowed.
	message := "Attendance recorded"
	if !outcome.Success {
		message = "Scan rejected"
	}

	return response.Success(c, http.StatusOK, outcome, message)
}

// UsageReport handles the admin per-card usage summary
func (h *AttendanceHandler) UsageReport(c echo.Context) error {
	report, err := h.attendanceUC.UsageReport(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Usage report retrieved successfully")
}
