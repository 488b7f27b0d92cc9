package repo

import (
	"context"

	"github.com/google/uuid"

	"github.com/flashfiesta/backend/internal/models"
)

// HasDeliveredPurchase reports whether the user has at least one line
// item for the product inside an order whose status is exactly
// "Delivered". This is the review-eligibility gate.
func (r *GormRepo) HasDeliveredPurchase(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&models.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ?", userID).
		Where("order_items.product_id = ?", productID).
		Where("orders.status = ?", models.OrderStatusDelivered).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormRepo) CreateReview(ctx context.Context, review *models.Review) error {
	return r.DB.WithContext(ctx).Create(review).Error
}
