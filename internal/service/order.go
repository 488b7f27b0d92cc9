package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flashfiesta/backend/internal/authz"
	"github.com/flashfiesta/backend/internal/events"
	"github.com/flashfiesta/backend/internal/models"
	"github.com/flashfiesta/backend/internal/repo"
	"github.com/flashfiesta/backend/internal/transport"
	"github.com/flashfiesta/backend/pkg/logging"
)

type OrderService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

func (s *OrderService) publish(ctx context.Context, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.Producer.Publish(pubCtx, key, event); err != nil {
		logging.FromContext(ctx).Error("event publish failed", "error", err)
	}
}

// PlaceOrder validates the request and hands the whole mutation to a
// single store transaction. Totals are recomputed from stored prices and
// stock is decremented with a floor check; see repo.PlaceOrder.
func (s *OrderService) PlaceOrder(ctx context.Context, p *authz.Principal, req transport.PlaceOrderRequest) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "order.place")

	if p == nil {
		return nil, authz.ErrPermissionDenied
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: items required", ErrValidation)
	}
	if req.FullName == "" {
		return nil, fmt.Errorf("%w: full_name required", ErrValidation)
	}
	if req.Address == "" {
		return nil, fmt.Errorf("%w: address required", ErrValidation)
	}
	if req.City == "" {
		return nil, fmt.Errorf("%w: city required", ErrValidation)
	}
	if req.ZipCode == "" {
		return nil, fmt.Errorf("%w: zip_code required", ErrValidation)
	}
	for _, line := range req.Items {
		if line.ProductID == uuid.Nil {
			return nil, fmt.Errorf("%w: product_id required", ErrValidation)
		}
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be >= 1", ErrValidation)
		}
	}

	shipping := repo.ShippingInfo{
		FullName: req.FullName,
		Address:  req.Address,
		City:     req.City,
		ZipCode:  req.ZipCode,
	}

	order, err := s.Repo.PlaceOrder(ctx, p.UserID, shipping, req.Items)
	if err != nil {
		return nil, err
	}

	l.Info("order_placed", "order_id", order.ID, "total", order.TotalAmount)
	s.publish(ctx, order.ID.String(), map[string]any{
		"type":     "order_created",
		"order_id": order.ID,
		"user_id":  p.UserID,
		"total":    order.TotalAmount,
	})

	return order, nil
}

func (s *OrderService) MyOrders(ctx context.Context, p *authz.Principal) ([]models.Order, error) {
	if p == nil {
		return nil, authz.ErrPermissionDenied
	}
	return s.Repo.ListOrdersByUser(ctx, p.UserID)
}

func (s *OrderService) AllOrders(ctx context.Context, p *authz.Principal) ([]models.Order, error) {
	if err := authz.Require(p, authz.CapManageOrders); err != nil {
		return nil, err
	}
	return s.Repo.ListAllOrders(ctx)
}

func (s *OrderService) OrderDetail(ctx context.Context, p *authz.Principal, id uuid.UUID) (*models.Order, error) {
	if err := authz.Require(p, authz.CapManageOrders); err != nil {
		return nil, err
	}
	order, err := s.Repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order", ErrNotFound)
		}
		return nil, err
	}
	return order, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, p *authz.Principal, id uuid.UUID, status string) error {
	if err := authz.Require(p, authz.CapManageOrders); err != nil {
		return err
	}
	if status == "" {
		return fmt.Errorf("%w: status required", ErrValidation)
	}
	if err := s.Repo.UpdateOrderStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: order", ErrNotFound)
		}
		return err
	}

	s.publish(ctx, id.String(), map[string]any{
		"type":     "order_status_updated",
		"order_id": id,
		"status":   status,
	})
	return nil
}
