package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flashfiesta/backend/internal/models"
	"github.com/flashfiesta/backend/internal/transport"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type ShippingInfo struct {
	FullName string
	Address  string
	City     string
	ZipCode  string
}

// PlaceOrder creates the order, its line items and the stock decrements
// as one atomic unit. The total is always recomputed here from the
// stored prices; a client-supplied total is never consulted.
//
// Stock is taken with a floor-checked UPDATE (quantity >= wanted), so two
// orders racing over the same product cannot drive it negative: the
// second UPDATE matches no row and the whole transaction rolls back.
func (r *GormRepo) PlaceOrder(ctx context.Context, userID uuid.UUID, shipping ShippingInfo, lines []transport.OrderLine) (*models.Order, error) {
	order := models.Order{
		UserID:   &userID,
		FullName: shipping.FullName,
		Address:  shipping.Address,
		City:     shipping.City,
		ZipCode:  shipping.ZipCode,
		Status:   models.OrderStatusPending,
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		var total float64
		for _, line := range lines {
			var product models.Product
			if err := tx.Where("id = ?", line.ProductID).First(&product).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", ErrProductNotFound, line.ProductID)
				}
				return err
			}

			res := tx.Model(&models.Product{}).
				Where("id = ? AND quantity >= ?", product.ID, line.Quantity).
				Update("quantity", gorm.Expr("quantity - ?", line.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", ErrInsufficientStock, product.Name)
			}

			productID := product.ID
			item := models.OrderItem{
				OrderID:     order.ID,
				ProductID:   &productID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				Price:       product.Price,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			total += product.Price * float64(line.Quantity)
			order.Items = append(order.Items, item)
		}

		order.TotalAmount = total
		return tx.Model(&models.Order{}).
			Where("id = ?", order.ID).
			Update("total_amount", total).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *GormRepo) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) error {
	res := r.DB.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
