package model

import (
	"time"
)

// SettlementLock marks a reference whose settlement is in flight
type SettlementLock struct {
	Reference string    `gorm:"primaryKey;size:64;not null"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for SettlementLock
func (SettlementLock) TableName() string {
	return "settlement_locks"
}
