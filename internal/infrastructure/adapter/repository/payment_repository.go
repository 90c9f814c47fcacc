package repository

import (
	"context"
	"fmt"

	errs "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/platform"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// PaymentRepository records verified payments and delivers the purchased item.
// It joins the unit of work carried by the context, so the payment row commits
// or rolls back together with the settle write.
type PaymentRepository struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewPaymentRepository creates a new PaymentRepository instance
func NewPaymentRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *PaymentRepository {
	return &PaymentRepository{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// RecordAndDeliver stores the payment and marks the order delivered
func (r *PaymentRepository) RecordAndDeliver(ctx context.Context, req platform.DeliveryRequest) (uint64, error) {
	now := r.timeProvider.Now()
	row := model.Payment{
		AccountID:   req.AccountID,
		Component:   req.Component,
		PaymentArea: req.Area,
		ItemID:      req.ItemID,
		UserID:      req.UserID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Gateway:     req.GatewayName,
		CreatedAt:   now,
	}

	conn := DBFromContext(ctx, r.db)
	if err := conn.Create(&row).Error; err != nil {
		r.logger.Error("Failed to record payment", map[string]any{
			"item_id": req.ItemID,
			"user_id": req.UserID,
			"error":   err.Error(),
		})
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	if err := conn.Model(&row).Update("delivered_at", now).Error; err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	r.logger.Info("Payment recorded and delivered", map[string]any{
		"payment_id": row.ID,
		"component":  req.Component,
		"area":       req.Area,
		"item_id":    req.ItemID,
		"user_id":    req.UserID,
		"amount":     req.Amount.String(),
		"currency":   req.Currency,
	})
	return row.ID, nil
}

// CountForItem returns how many payments were recorded for an item and user
func (r *PaymentRepository) CountForItem(ctx context.Context, itemID, userID uint64) (int64, error) {
	var count int64
	err := DBFromContext(ctx, r.db).Model(&model.Payment{}).
		Where("item_id = ? AND user_id = ?", itemID, userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return count, nil
}

var _ platform.SettlementDelivery = (*PaymentRepository)(nil)
