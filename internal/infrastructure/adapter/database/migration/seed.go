package migration

import (
	"context"

	"github.com/amirhossein-jamali/momo-gateway/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// PayableSeed is a priced item created at startup
type PayableSeed struct {
	Component string `mapstructure:"component"`
	Area      string `mapstructure:"area"`
	ItemID    uint64 `mapstructure:"itemId"`
	AccountID uint64 `mapstructure:"accountId"`
	Amount    string `mapstructure:"amount"`
	Currency  string `mapstructure:"currency"`
}

// PayableWriter stores item prices
type PayableWriter interface {
	Upsert(ctx context.Context, component, area string, itemID, accountID uint64, amount decimal.Decimal, currency string) error
}

// SeedPayables writes the configured payables, used by development and sandbox setups
func SeedPayables(ctx context.Context, writer PayableWriter, seeds []PayableSeed, logger coreport.Logger) error {
	for _, seed := range seeds {
		amount, err := entity.ParseAmount(seed.Amount)
		if err != nil {
			return err
		}
		if err := writer.Upsert(ctx, seed.Component, seed.Area, seed.ItemID, seed.AccountID, amount, seed.Currency); err != nil {
			return err
		}
		logger.Info("Seeded payable", map[string]any{
			"component": seed.Component,
			"area":      seed.Area,
			"item_id":   seed.ItemID,
			"amount":    amount.String(),
			"currency":  seed.Currency,
		})
	}
	return nil
}
