// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Plan is a catalog entry describing a purchasable membership tier.
// Plans are reference data: the attendance core reads them but never
// mutates them.
type Plan struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`           // Display name, e.g. "Family Annual".
	Description   string    `json:"description"`    // Marketing copy shown on the plans page.
	Price         float64   `json:"price"`          // Cost per renewal period.
	DurationYears int       `json:"duration_years"` // Renewal period in years.
	MaxMembers    int       `json:"max_members"`    // Group size limit: primary plus beneficiaries.
	IsActive      bool      `json:"is_active"`      // Inactive plans are hidden from purchase.
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
