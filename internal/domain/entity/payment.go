// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus tracks a payment through the gateway flow.
type PaymentStatus string

const (
	// PaymentCreated means a gateway order exists but has not been paid.
	PaymentCreated PaymentStatus = "created"
	// PaymentCaptured means the gateway confirmed the charge.
	PaymentCaptured PaymentStatus = "captured"
	// PaymentFailed means the gateway rejected or abandoned the charge.
	PaymentFailed PaymentStatus = "failed"
)

// Payment records one monetary transaction tied to a membership purchase.
type Payment struct {
	ID               uuid.UUID     `json:"id"`
	UserID           uuid.UUID     `json:"user_id"`
	PlanID           uuid.UUID     `json:"plan_id"`
	MembershipID     *string       `json:"membership_id"` // Set once the purchase creates the membership.
	Amount           float64       `json:"amount"`
	Currency         string        `json:"currency"`
	Status           PaymentStatus `json:"status"`
	GatewayOrderID   string        `json:"gateway_order_id"`
	GatewayPaymentID string        `json:"gateway_payment_id"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}
