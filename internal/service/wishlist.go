package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/flashfiesta/backend/internal/authz"
	"github.com/flashfiesta/backend/internal/models"
	"github.com/flashfiesta/backend/internal/repo"
)

type WishlistService struct {
	Repo *repo.GormRepo
}

func (s *WishlistService) Toggle(ctx context.Context, p *authz.Principal, productID uuid.UUID) (bool, error) {
	if p == nil {
		return false, authz.ErrPermissionDenied
	}
	if productID == uuid.Nil {
		return false, fmt.Errorf("%w: product_id required", ErrValidation)
	}

	wishlisted, err := s.Repo.ToggleWishlist(ctx, p.UserID, productID)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			return false, fmt.Errorf("%w: product", ErrNotFound)
		}
		return false, err
	}
	return wishlisted, nil
}

func (s *WishlistService) List(ctx context.Context, p *authz.Principal) ([]models.Product, error) {
	if p == nil {
		return nil, authz.ErrPermissionDenied
	}
	return s.Repo.ListWishlist(ctx, p.UserID)
}
