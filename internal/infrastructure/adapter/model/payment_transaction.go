package model

import (
	"time"
)

// PaymentTransaction is the database model of one request-to-pay attempt
type PaymentTransaction struct {
	ID                    uint64    `gorm:"primaryKey;autoIncrement"`
	Component             string    `gorm:"not null;size:100"`
	PaymentArea           string    `gorm:"not null;size:100"`
	ItemID                uint64    `gorm:"not null;index:idx_payment_transactions_pair,priority:1"`
	UserID                uint64    `gorm:"not null;index:idx_payment_transactions_pair,priority:2"`
	ExternalReference     string    `gorm:"uniqueIndex;not null;size:64"`
	ProviderToken         string    `gorm:"type:text"`
	Status                string    `gorm:"not null;size:20;index"`
	SettlementID          uint64    `gorm:"not null;default:0"`
	ProviderTransactionID string    `gorm:"size:64"`
	FlagReason            string    `gorm:"type:text"`
	CreatedAt             time.Time `gorm:"not null;index"`
	CompletedAt           *time.Time
}

// TableName specifies the table name for PaymentTransaction
func (PaymentTransaction) TableName() string {
	return "payment_transactions"
}
