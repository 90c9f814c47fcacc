package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/momo-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/platform"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PayableRepository resolves item prices from the payables table
type PayableRepository struct {
	db        *gorm.DB
	logger    coreport.Logger
	surcharge decimal.Decimal
}

// NewPayableRepository creates a PayableRepository that adds surchargePercent to every price
func NewPayableRepository(db *gorm.DB, logger coreport.Logger, surchargePercent decimal.Decimal) *PayableRepository {
	return &PayableRepository{
		db:        db,
		logger:    logger,
		surcharge: surchargePercent,
	}
}

// GetExpectedAmountAndCurrency returns the surcharged price of an item
func (r *PayableRepository) GetExpectedAmountAndCurrency(
	ctx context.Context,
	component, area string,
	itemID uint64,
) (*platform.Payable, error) {
	var row model.Payable
	result := DBFromContext(ctx, r.db).
		Where("component = ? AND payment_area = ? AND item_id = ?", component, area, itemID).
		First(&row)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			r.logger.Warn("Payable not found", map[string]any{
				"component": component,
				"area":      area,
				"item_id":   itemID,
			})
			return nil, errs.ErrPayableNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	currency := strings.ToUpper(row.Currency)
	return &platform.Payable{
		AccountID: row.AccountID,
		Amount:    entity.RoundedCost(row.Amount, currency, r.surcharge),
		Currency:  currency,
	}, nil
}

// Upsert stores the base price of an item
func (r *PayableRepository) Upsert(ctx context.Context, component, area string, itemID, accountID uint64, amount decimal.Decimal, currency string) error {
	conn := DBFromContext(ctx, r.db)

	var row model.Payable
	err := conn.Where("component = ? AND payment_area = ? AND item_id = ?", component, area, itemID).First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = model.Payable{
			Component:   component,
			PaymentArea: area,
			ItemID:      itemID,
			AccountID:   accountID,
			Amount:      amount,
			Currency:    strings.ToUpper(currency),
		}
		err = conn.Create(&row).Error
	case err == nil:
		err = conn.Model(&row).Updates(map[string]any{
			"account_id": accountID,
			"amount":     amount,
			"currency":   strings.ToUpper(currency),
		}).Error
	}

	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

var _ platform.PayableProvider = (*PayableRepository)(nil)
