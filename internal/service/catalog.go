package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/flashfiesta/backend/internal/authz"
	"github.com/flashfiesta/backend/internal/events"
	"github.com/flashfiesta/backend/internal/models"
	"github.com/flashfiesta/backend/internal/repo"
	"github.com/flashfiesta/backend/internal/service/search"
	"github.com/flashfiesta/backend/internal/transport"
	"github.com/flashfiesta/backend/pkg/logging"
)

const suggestionLimit = 5

type CatalogService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
	ES       *elasticsearch.Client
	ESIndex  string
}

func (s *CatalogService) publish(ctx context.Context, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if err := s.Producer.Publish(pubCtx, key, event); err != nil {
		logging.FromContext(ctx).Error("event publish failed", "error", err)
	}
}

func (s *CatalogService) ListProducts(ctx context.Context, f repo.ProductFilter) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx, f)
}

func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.Repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product", ErrNotFound)
		}
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, p *authz.Principal, req transport.CreateProductRequest) (*models.Product, error) {
	if err := authz.Require(p, authz.CapManageProducts); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must be >= 0", ErrValidation)
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		CategoryID:  req.CategoryID,
		Image:       req.Image,
		IsTrending:  req.IsTrending,
	}
	for _, img := range req.Gallery {
		product.Gallery = append(product.Gallery, models.GalleryImage{Image: img})
	}

	if err := s.Repo.CreateProduct(ctx, &product); err != nil {
		return nil, err
	}

	s.publish(ctx, product.ID.String(), map[string]any{
		"type":       "product_created",
		"product_id": product.ID,
		"name":       product.Name,
	})
	return &product, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, p *authz.Principal, id uuid.UUID, req transport.UpdateProductRequest) (*models.Product, error) {
	if err := authz.Require(p, authz.CapManageProducts); err != nil {
		return nil, err
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must be >= 0", ErrValidation)
	}

	product, err := s.Repo.UpdateProduct(ctx, id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product", ErrNotFound)
		}
		return nil, err
	}

	s.publish(ctx, product.ID.String(), map[string]any{
		"type":       "product_updated",
		"product_id": product.ID,
	})
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, p *authz.Principal, id uuid.UUID) error {
	if err := authz.Require(p, authz.CapManageProducts); err != nil {
		return err
	}
	if err := s.Repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product", ErrNotFound)
		}
		return err
	}

	s.publish(ctx, id.String(), map[string]any{
		"type":       "product_deleted",
		"product_id": id,
	})
	return nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.Repo.ListCategories(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, p *authz.Principal, req transport.CategoryRequest) (*models.Category, error) {
	if err := authz.Require(p, authz.CapManageCategories); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}

	category := models.Category{Name: req.Name, Image: req.Image}
	if err := s.Repo.CreateCategory(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, p *authz.Principal, id uuid.UUID, req transport.CategoryRequest) (*models.Category, error) {
	if err := authz.Require(p, authz.CapManageCategories); err != nil {
		return nil, err
	}
	category, err := s.Repo.UpdateCategory(ctx, id, req.Name, req.Image)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category", ErrNotFound)
		}
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, p *authz.Principal, id uuid.UUID) error {
	if err := authz.Require(p, authz.CapManageCategories); err != nil {
		return err
	}
	if err := s.Repo.DeleteCategory(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: category", ErrNotFound)
		}
		return err
	}
	return nil
}

// Suggest returns up to five distinct product names containing q.
// Queries shorter than two characters return nothing. The search index
// is preferred when configured; the store answers otherwise (and on
// index errors, so suggestions degrade instead of failing).
func (s *CatalogService) Suggest(ctx context.Context, q string) ([]string, error) {
	if len(q) < 2 {
		return []string{}, nil
	}

	if s.ES != nil {
		names, err := search.Suggest(ctx, s.ES, s.ESIndex, q, suggestionLimit)
		if err == nil {
			return names, nil
		}
		logging.FromContext(ctx).Warn("suggestion index unavailable", "error", err)
	}

	return s.Repo.SuggestNames(ctx, q, suggestionLimit)
}
