// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wellclub/internal/domain/entity"
	"wellclub/internal/errors"

	"github.com/google/uuid"
)

// ErrBookingNotFound is returned when a booking is not found.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepository defines the interface for service booking persistence.
type BookingRepository interface {
	// Create persists a new booking.
	Create(ctx context.Context, booking *entity.Booking) error

	// FindByID retrieves a booking by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// FindByUser retrieves all bookings made by a user, soonest slot first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)

	// FindAll retrieves all bookings, soonest slot first. Admin listing.
	FindAll(ctx context.Context) ([]*entity.Booking, error)

	// UpdateStatus changes the lifecycle state of a booking.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
}
