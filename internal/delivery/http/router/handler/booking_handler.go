package handler

import (
	"log/slog"
	"net/http"
	"time"

	"wellclub/internal/delivery/http/middleware"
	"wellclub/internal/delivery/http/response"
	"wellclub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
	Logger    *slog.Logger
}

// BookingHandler holds dependencies for service booking handlers
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC: params.BookingUC,
		logger:    params.Logger,
	}
}

// BookingRequest represents the request body for reserving a slot
type BookingRequest struct {
	ServiceName string    `json:"service_name" validate:"required"`
	SlotAt      time.Time `json:"slot_at" validate:"required"`
	Notes       string    `json:"notes,omitempty"`
}

// CreateBooking handles reserving a service slot
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid booking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), userID, usecase.BookingInput{
		ServiceName: req.ServiceName,
		SlotAt:      req.SlotAt,
		Notes:       req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, booking, "Booking created successfully")
}

// MyBookings handles listing the calling member's bookings
func (h *BookingHandler) MyBookings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookings, err := h.bookingUC.MyBookings(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bookings, "Bookings retrieved successfully")
}

// ListAllBookings handles the admin listing of every booking
func (h *BookingHandler) ListAllBookings(c echo.Context) error {
	bookings, err := h.bookingUC.ListAllBookings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bookings, "Bookings retrieved successfully")
}

// CancelBooking handles withdrawing one of the member's bookings
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	if err := h.bookingUC.CancelBooking(c.Request().Context(), userID, bookingID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"booking_id": bookingID.String()}, "Booking cancelled successfully")
}
