package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	authmw "github.com/flashfiesta/backend/internal/middleware/auth"
	"github.com/flashfiesta/backend/internal/repo"
	"github.com/flashfiesta/backend/internal/service"
	"github.com/flashfiesta/backend/internal/transport"
	"github.com/flashfiesta/backend/pkg/logging"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.list")

	filter := repo.ProductFilter{
		Search:   c.QueryParam("search"),
		Trending: c.QueryParam("trending") == "true",
	}
	if raw := c.QueryParam("category"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return respondFailure(c, http.StatusBadRequest, "Invalid category id")
		}
		filter.CategoryID = &id
	}

	products, err := h.Svc.ListProducts(ctx, filter)
	if err != nil {
		l.Error("list_products_error", "status", 500, "error", err)
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, products)
}

func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondFailure(c, http.StatusBadRequest, "Invalid id")
	}

	product, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, product)
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "reason", "invalid body", "error", err)
		return respondFailure(c, http.StatusBadRequest, "Invalid body")
	}

	product, err := h.Svc.CreateProduct(ctx, authmw.PrincipalFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}

	l.Info("create_product_success", "product_id", product.ID)
	return respondData(c, http.StatusCreated, product)
}

func (h *CatalogHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondFailure(c, http.StatusBadRequest, "Invalid id")
	}

	var req transport.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return respondFailure(c, http.StatusBadRequest, "Invalid body")
	}

	product, err := h.Svc.UpdateProduct(ctx, authmw.PrincipalFrom(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, product)
}

func (h *CatalogHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondFailure(c, http.StatusBadRequest, "Invalid id")
	}

	if err := h.Svc.DeleteProduct(ctx, authmw.PrincipalFrom(c), id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, http.StatusOK, "Product deleted", nil)
}

func (h *CatalogHTTP) Suggestions(c echo.Context) error {
	ctx := c.Request().Context()

	names, err := h.Svc.Suggest(ctx, c.QueryParam("q"))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, names)
}
