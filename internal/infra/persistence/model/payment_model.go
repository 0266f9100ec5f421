package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table. gateway_order_id is unique so
// a purchase confirmation always resolves to exactly one record.
type PaymentModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanID           uuid.UUID `gorm:"type:uuid;not null"`
	MembershipID     *string   `gorm:"type:varchar(32);index"`
	Amount           float64   `gorm:"type:decimal(10,2);not null"`
	Currency         string    `gorm:"type:varchar(8);not null"`
	Status           string    `gorm:"type:varchar(20);not null"`
	GatewayOrderID   string    `gorm:"type:varchar(64);unique;not null"`
	GatewayPaymentID string    `gorm:"type:varchar(64)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
