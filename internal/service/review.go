package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/flashfiesta/backend/internal/authz"
	"github.com/flashfiesta/backend/internal/models"
	"github.com/flashfiesta/backend/internal/repo"
	"github.com/flashfiesta/backend/internal/transport"
	"github.com/flashfiesta/backend/pkg/logging"
)

type ReviewService struct {
	Repo *repo.GormRepo
}

// CanReview reports whether the user has a delivered order containing
// the product. Pure read; the answer does not depend on prior attempts.
func (s *ReviewService) CanReview(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	return s.Repo.HasDeliveredPurchase(ctx, userID, productID)
}

// SubmitReview enforces the verified-purchase gate, then creates the
// review. A user may review the same delivered product more than once;
// de-duplication is intentionally not applied.
func (s *ReviewService) SubmitReview(ctx context.Context, p *authz.Principal, req transport.CreateReviewRequest) (*models.Review, error) {
	l := logging.FromContext(ctx).With("svc", "review.submit")

	if p == nil {
		return nil, authz.ErrPermissionDenied
	}
	if req.ProductID == uuid.Nil {
		return nil, fmt.Errorf("%w: product_id required", ErrValidation)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	eligible, err := s.Repo.HasDeliveredPurchase(ctx, p.UserID, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !eligible {
		l.Warn("review_rejected", "status", 403, "reason", "no delivered purchase", "product_id", req.ProductID)
		return nil, ErrNotEligible
	}

	review := models.Review{
		ProductID: req.ProductID,
		UserID:    p.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.Repo.CreateReview(ctx, &review); err != nil {
		return nil, err
	}

	l.Info("review_created", "review_id", review.ID)
	return &review, nil
}
