package model

import (
	"time"

	"github.com/google/uuid"
)

// MembershipModel mirrors the 'memberships' table. The primary key is the
// business identifier (e.g. "WC-2026-4F7A2C1B"), not a UUID, so it can be
// printed on cards and invoices. rfid_card_id carries a partial unique
// index: at most one membership holds a given card.
type MembershipModel struct {
	ID                 string    `gorm:"type:varchar(32);primary_key"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanID             uuid.UUID `gorm:"type:uuid;not null;index"`
	StartDate          time.Time `gorm:"not null"`
	EndDate            time.Time `gorm:"not null"`
	IsActive           bool      `gorm:"not null;default:true"`
	IsPrimary          bool      `gorm:"not null;default:false"`
	ParentMembershipID *string   `gorm:"type:varchar(32);index"`
	RFIDCardID         *string   `gorm:"column:rfid_card_id;type:varchar(64);uniqueIndex:idx_memberships_rfid_card,where:rfid_card_id IS NOT NULL"`
	LastScanAt         *time.Time
	ScanCount          int64 `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (MembershipModel) TableName() string {
	return "memberships"
}

// ScanRecordModel mirrors the 'scan_records' table. Rows are append-only.
type ScanRecordModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MembershipID string     `gorm:"type:varchar(32);not null;index"`
	CardID       string     `gorm:"type:varchar(64);not null;index"`
	UserID       *uuid.UUID `gorm:"type:uuid"`
	ScannedAt    time.Time  `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ScanRecordModel) TableName() string {
	return "scan_records"
}
