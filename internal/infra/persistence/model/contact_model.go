package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactRequestModel mirrors the 'contact_requests' table.
type ContactRequestModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(32)"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ContactRequestModel) TableName() string {
	return "contact_requests"
}
