package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flashfiesta/backend/internal/models"
	"github.com/flashfiesta/backend/internal/transport"
)

type ProductFilter struct {
	Search     string
	CategoryID *uuid.UUID
	Trending   bool
}

func (r *GormRepo) ListProducts(ctx context.Context, f ProductFilter) ([]models.Product, error) {
	q := r.DB.WithContext(ctx).Model(&models.Product{}).Preload("Category").Preload("Gallery")

	if f.Search != "" {
		q = q.Where("name LIKE ?", "%"+f.Search+"%")
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.Trending {
		q = q.Where("is_trending = ?", true)
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *GormRepo) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.DB.WithContext(ctx).
		Preload("Category").
		Preload("Gallery").
		Preload("Reviews").
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	return r.DB.WithContext(ctx).Create(product).Error
}

func (r *GormRepo) UpdateProduct(ctx context.Context, id uuid.UUID, req transport.UpdateProductRequest) (*models.Product, error) {
	var product models.Product
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&product).Error; err != nil {
			return err
		}

		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.Price != nil {
			product.Price = *req.Price
		}
		if req.Quantity != nil {
			product.Quantity = *req.Quantity
		}
		if req.CategoryID != nil {
			product.CategoryID = req.CategoryID
		} else if req.ClearCategory {
			product.CategoryID = nil
		}
		if req.Image != nil {
			product.Image = *req.Image
		}
		if req.IsTrending != nil {
			product.IsTrending = *req.IsTrending
		}

		if err := tx.Save(&product).Error; err != nil {
			return err
		}

		for _, img := range req.Gallery {
			g := models.GalleryImage{ProductID: product.ID, Image: img}
			if err := tx.Create(&g).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes the product and detaches its order line items.
// The items keep their name and price snapshots, so order history
// survives the delete.
func (r *GormRepo) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.OrderItem{}).
			Where("product_id = ?", id).
			Update("product_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM wishlist_items WHERE product_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *GormRepo) CountProducts(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// SuggestNames returns up to limit distinct product names containing q.
func (r *GormRepo) SuggestNames(ctx context.Context, q string, limit int) ([]string, error) {
	var names []string
	err := r.DB.WithContext(ctx).Model(&models.Product{}).
		Distinct("name").
		Where("name LIKE ?", "%"+q+"%").
		Limit(limit).
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
