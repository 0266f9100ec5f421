// Package router contains routing setup for the HTTP delivery.
package router

import (
	"wellclub/internal/delivery/http/middleware"
	"wellclub/internal/delivery/http/router/handler"
	"wellclub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the server registers, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	MembershipHandler *handler.MembershipHandler
	RFIDHandler       *handler.RFIDHandler
	AttendanceHandler *handler.AttendanceHandler
	PlanHandler       *handler.PlanHandler
	BookingHandler    *handler.BookingHandler
	ContactHandler    *handler.ContactHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware
	adminRole := entity.RoleAdmin.String()

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public surface
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
	}
	e.GET("/plans", r.params.PlanHandler.ListPlans)
	e.POST("/contact", r.params.ContactHandler.SubmitContact)

	// Kiosk readers post taps unauthenticated; the card itself is the
	// credential and every membership check still runs.
	e.POST("/attendance/rfid-tap", r.params.AttendanceHandler.RecordTap)

	// Member routes that require authentication
	userGroup := e.Group("/users")
	userGroup.Use(auth.Authenticate)
	{
		userGroup.GET("/profile", r.params.UserHandler.GetProfile)
	}

	membershipGroup := e.Group("/memberships")
	membershipGroup.Use(auth.Authenticate)
	{
		membershipGroup.POST("/purchase/order", r.params.MembershipHandler.CreatePurchaseOrder)
		membershipGroup.POST("/purchase/confirm", r.params.MembershipHandler.ConfirmPurchase)
		membershipGroup.POST("/beneficiaries/invite", r.params.MembershipHandler.InviteBeneficiary)
		membershipGroup.POST("/beneficiaries/verify", r.params.MembershipHandler.VerifyBeneficiary)
		membershipGroup.GET("/me", r.params.MembershipHandler.MyMemberships)
		membershipGroup.GET("/me/pass", r.params.MembershipHandler.MemberPass)
	}

	bookingGroup := e.Group("/bookings")
	bookingGroup.Use(auth.Authenticate)
	{
		bookingGroup.POST("", r.params.BookingHandler.CreateBooking)
		bookingGroup.GET("", r.params.BookingHandler.MyBookings)
		bookingGroup.DELETE("/:id", r.params.BookingHandler.CancelBooking)
	}

	// Admin routes: authentication plus the admin role, checked before any
	// handler logic runs.
	adminUserGroup := e.Group("/admin/users")
	adminUserGroup.Use(auth.Authenticate)
	adminUserGroup.Use(auth.RequireRole(adminRole))
	{
		adminUserGroup.POST("/assign-rfid", r.params.RFIDHandler.AssignCard)
		adminUserGroup.DELETE("/unassign-rfid", r.params.RFIDHandler.UnassignCard)
		adminUserGroup.POST("/check-rfid-access", r.params.RFIDHandler.CheckAccess)
		adminUserGroup.GET("/rfid-access/:rfidCardId", r.params.RFIDHandler.ListCardAccess)
	}

	adminGroup := e.Group("/admin")
	adminGroup.Use(auth.Authenticate)
	adminGroup.Use(auth.RequireRole(adminRole))
	{
		adminGroup.POST("/plans", r.params.PlanHandler.CreatePlan)
		adminGroup.PUT("/plans/:id", r.params.PlanHandler.UpdatePlan)
		adminGroup.POST("/memberships/:id/deactivate", r.params.MembershipHandler.Deactivate)
		adminGroup.GET("/bookings", r.params.BookingHandler.ListAllBookings)
		adminGroup.GET("/contact", r.params.ContactHandler.ListContacts)
	}

	groupListing := e.Group("/users/membership-groups")
	groupListing.Use(auth.Authenticate)
	groupListing.Use(auth.RequireRole(adminRole))
	{
		groupListing.GET("", r.params.MembershipHandler.ListGroups)
	}

	usageGroup := e.Group("/attendance/rfid-usage")
	usageGroup.Use(auth.Authenticate)
	usageGroup.Use(auth.RequireRole(adminRole))
	{
		usageGroup.GET("", r.params.AttendanceHandler.UsageReport)
	}
}
