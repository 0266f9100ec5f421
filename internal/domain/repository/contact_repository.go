// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wellclub/internal/domain/entity"
)

// ContactRepository defines the interface for contact form persistence.
type ContactRepository interface {
	// Create persists a submitted contact request.
	Create(ctx context.Context, contact *entity.ContactRequest) error

	// FindAll retrieves all contact requests, newest first. Admin listing.
	FindAll(ctx context.Context) ([]*entity.ContactRequest, error)
}
