package gorm

import (
	"context"

	"github.com/barkeep/v1/internal/domain/order"
	"github.com/barkeep/v1/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderRepository implements outbound.OrderRepository using GORM
type OrderRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB, logger *zap.Logger) *OrderRepository {
	return &OrderRepository{
		db:     db,
		logger: logger.Named("order-repository"),
	}
}

// Create persists a new order
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	if err := r.db.WithContext(ctx).Create(orderToModel(o)).Error; err != nil {
		return errors.NewDatabaseError("create order", err)
	}
	return nil
}

// FindByID retrieves an order by its ID
func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	var model OrderModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, errors.NewOrderNotFoundError(id.String())
	}
	if err != nil {
		return nil, errors.NewDatabaseError("find order", err)
	}
	return orderToDomain(&model), nil
}

// Update saves an order's mutable state
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	if err := r.db.WithContext(ctx).Save(orderToModel(o)).Error; err != nil {
		return errors.NewDatabaseError("update order", err)
	}
	return nil
}

// ListByBar returns the bar's orders, newest first
func (r *OrderRepository) ListByBar(ctx context.Context, barID int) ([]*order.Order, error) {
	var models []OrderModel
	err := r.db.WithContext(ctx).
		Where("bar_id = ?", barID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.NewDatabaseError("list orders", err)
	}

	orders := make([]*order.Order, 0, len(models))
	for i := range models {
		orders = append(orders, orderToDomain(&models[i]))
	}
	return orders, nil
}
