package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payable is a priced item of the host platform
type Payable struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	Component   string          `gorm:"not null;size:100;uniqueIndex:idx_payables_item,priority:1"`
	PaymentArea string          `gorm:"not null;size:100;uniqueIndex:idx_payables_item,priority:2"`
	ItemID      uint64          `gorm:"not null;uniqueIndex:idx_payables_item,priority:3"`
	AccountID   uint64          `gorm:"not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	Currency    string          `gorm:"not null;size:3"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName specifies the table name for Payable
func (Payable) TableName() string {
	return "payables"
}
