package model

import (
	"time"

	"github.com/google/uuid"
)

// PlanModel mirrors the 'plans' table.
type PlanModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Description   string    `gorm:"type:text"`
	Price         float64   `gorm:"type:decimal(10,2);not null"`
	DurationYears int       `gorm:"not null;default:1"`
	MaxMembers    int       `gorm:"not null;default:1"`
	IsActive      bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlanModel) TableName() string {
	return "plans"
}
