// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity record behind every membership. It carries only
// identity and contact information; club state lives on Membership.
type User struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email      string    // The user's unique contact email, used as the login identifier.
	Phone      string    // Optional phone number, also usable as a contact identifier.
	Name       string    // The user's display name.
	Password   string    // Bcrypt hash of the login password; never serialized.
	Role       Role      // Either RoleMember or RoleAdmin.
	IsVerified bool      // Set once the user completes contact verification.
	CreatedAt  time.Time // Timestamp of when this account was created.
	UpdatedAt  time.Time // Timestamp of the last modification to this account.
}

// IsAdmin reports whether the user may access the admin surface.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
