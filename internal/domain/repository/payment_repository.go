// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"wellclub/internal/domain/entity"
	"wellclub/internal/errors"
)

// ErrPaymentNotFound is returned when a payment record is not found.
var ErrPaymentNotFound = errors.New("payment not found")

// PaymentRepository defines the interface for payment record persistence.
type PaymentRepository interface {
	// Create persists a new payment record.
	Create(ctx context.Context, payment *entity.Payment) error

	// FindByGatewayOrderID retrieves the payment tied to a gateway order.
	FindByGatewayOrderID(ctx context.Context, orderID string) (*entity.Payment, error)

	// Update modifies an existing payment record.
	Update(ctx context.Context, payment *entity.Payment) error
}
