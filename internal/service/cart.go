package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/flashfiesta/backend/internal/authz"
	"github.com/flashfiesta/backend/internal/repo"
	"github.com/flashfiesta/backend/internal/transport"
)

type CartService struct {
	Repo *repo.GormRepo
}

// SyncCart wholesale-replaces the user's cart with the client-held
// state. Last write wins across devices; no merging against the
// previous server state and no stock validation at sync time.
func (s *CartService) SyncCart(ctx context.Context, p *authz.Principal, req transport.SyncCartRequest) error {
	if p == nil {
		return authz.ErrPermissionDenied
	}
	for i := range req.Items {
		if req.Items[i].ID == uuid.Nil {
			return fmt.Errorf("%w: item id required", ErrValidation)
		}
		if req.Items[i].Quantity < 1 {
			req.Items[i].Quantity = 1
		}
	}
	return s.Repo.ReplaceCart(ctx, p.UserID, req.Items)
}

func (s *CartService) GetCart(ctx context.Context, p *authz.Principal) ([]transport.CartView, error) {
	if p == nil {
		return nil, authz.ErrPermissionDenied
	}
	return s.Repo.GetCart(ctx, p.UserID)
}
