package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a verified payment recorded at settlement
type Payment struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	AccountID   uint64          `gorm:"not null;index"`
	Component   string          `gorm:"not null;size:100"`
	PaymentArea string          `gorm:"not null;size:100"`
	ItemID      uint64          `gorm:"not null;index:idx_payments_item_user,priority:1"`
	UserID      uint64          `gorm:"not null;index:idx_payments_item_user,priority:2"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	Currency    string          `gorm:"not null;size:3"`
	Gateway     string          `gorm:"not null;size:50"`
	CreatedAt   time.Time       `gorm:"not null"`
	DeliveredAt *time.Time
}

// TableName specifies the table name for Payment
func (Payment) TableName() string {
	return "payments"
}
