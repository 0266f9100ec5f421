package usecase

import (
	"context"
	"time"

	"wellclub/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingInput carries the fields of a new service booking.
type BookingInput struct {
	ServiceName string
	SlotAt      time.Time
	Notes       string
}

// BookingUsecase defines the service booking use cases.
type BookingUsecase interface {
	// CreateBooking reserves a slot for the calling member.
	CreateBooking(ctx context.Context, userID uuid.UUID, input BookingInput) (*entity.Booking, error)

	// MyBookings lists the calling member's bookings.
	MyBookings(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)

	// ListAllBookings lists every booking. Admin only.
	ListAllBookings(ctx context.Context) ([]*entity.Booking, error)

	// CancelBooking cancels one of the calling member's bookings.
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) error
}
