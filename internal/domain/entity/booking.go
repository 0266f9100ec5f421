// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a service booking.
type BookingStatus string

const (
	// BookingConfirmed is the state of a freshly created booking.
	BookingConfirmed BookingStatus = "confirmed"
	// BookingCancelled marks a booking withdrawn by the member or an admin.
	BookingCancelled BookingStatus = "cancelled"
)

// Booking reserves a slot for a club service (massage, sauna, class, ...)
// for a member.
type Booking struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"user_id"`
	ServiceName string        `json:"service_name"`
	SlotAt      time.Time     `json:"slot_at"`
	Notes       string        `json:"notes,omitempty"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
