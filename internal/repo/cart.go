package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flashfiesta/backend/internal/models"
	"github.com/flashfiesta/backend/internal/transport"
)

// ReplaceCart is the wholesale sync: drop everything the user has, then
// insert the client-held state. Running it in one transaction keeps a
// concurrent read from observing the transiently empty cart.
func (r *GormRepo) ReplaceCart(ctx context.Context, userID uuid.UUID, lines []transport.CartLine) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for _, line := range lines {
			item := models.CartItem{
				UserID:    userID,
				ProductID: line.ID,
				Quantity:  line.Quantity,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetCart returns the joined product+quantity view of a user's cart.
func (r *GormRepo) GetCart(ctx context.Context, userID uuid.UUID) ([]transport.CartView, error) {
	var views []transport.CartView
	err := r.DB.WithContext(ctx).Model(&models.CartItem{}).
		Select("products.id AS id, products.name AS name, products.image AS image, products.price AS price, cart_items.quantity AS quantity").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("cart_items.user_id = ?", userID).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}
