package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	authmw "github.com/flashfiesta/backend/internal/middleware/auth"
	"github.com/flashfiesta/backend/internal/transport"
)

func (h *CatalogHTTP) ListCategories(c echo.Context) error {
	ctx := c.Request().Context()

	categories, err := h.Svc.ListCategories(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, categories)
}

func (h *CatalogHTTP) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return respondFailure(c, http.StatusBadRequest, "Invalid body")
	}

	category, err := h.Svc.CreateCategory(ctx, authmw.PrincipalFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, category)
}

func (h *CatalogHTTP) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondFailure(c, http.StatusBadRequest, "Invalid id")
	}

	var req transport.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return respondFailure(c, http.StatusBadRequest, "Invalid body")
	}

	category, err := h.Svc.UpdateCategory(ctx, authmw.PrincipalFrom(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, category)
}

func (h *CatalogHTTP) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondFailure(c, http.StatusBadRequest, "Invalid id")
	}

	if err := h.Svc.DeleteCategory(ctx, authmw.PrincipalFrom(c), id); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, http.StatusOK, "Category deleted", nil)
}
