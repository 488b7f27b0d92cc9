package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flashfiesta/backend/internal/models"
)

// ToggleWishlist adds the product to the profile's wishlist, or removes
// it if already present. Returns the resulting membership.
func (r *GormRepo) ToggleWishlist(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Where("id = ?", productID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrProductNotFound
		}
		return false, err
	}

	var profile models.Profile
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return false, err
	}

	assoc := r.DB.WithContext(ctx).Model(&profile).Association("Wishlist")

	var existing []models.Product
	if err := assoc.Find(&existing, "products.id = ?", productID); err != nil {
		return false, err
	}

	if len(existing) > 0 {
		if err := assoc.Delete(&product); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := assoc.Append(&product); err != nil {
		return false, err
	}
	return true, nil
}

func (r *GormRepo) ListWishlist(ctx context.Context, userID uuid.UUID) ([]models.Product, error) {
	var profile models.Profile
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}

	var products []models.Product
	if err := r.DB.WithContext(ctx).Model(&profile).Association("Wishlist").Find(&products); err != nil {
		return nil, err
	}
	return products, nil
}
