package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/flashfiesta/backend/internal/middleware/auth"
	"github.com/flashfiesta/backend/internal/service"
	"github.com/flashfiesta/backend/internal/transport"
)

type ShoppingHTTP struct {
	Reviews  *service.ReviewService
	Cart     *service.CartService
	Wishlist *service.WishlistService
	Stats    *service.StatsService
}

func (h *ShoppingHTTP) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return respondFailure(c, http.StatusBadRequest, "Invalid body")
	}

	review, err := h.Reviews.SubmitReview(ctx, authmw.PrincipalFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusCreated, review)
}

func (h *ShoppingHTTP) ToggleWishlist(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.ToggleWishlistRequest
	if err := c.Bind(&req); err != nil {
		return respondFailure(c, http.StatusBadRequest, "Invalid body")
	}

	wishlisted, err := h.Wishlist.Toggle(ctx, authmw.PrincipalFrom(c), req.ProductID)
	if err != nil {
		return respondError(c, err)
	}

	message := "Added to wishlist"
	if !wishlisted {
		message = "Removed from wishlist"
	}
	return respondMessage(c, http.StatusOK, message, map[string]any{
		"wishlisted": wishlisted,
	})
}

func (h *ShoppingHTTP) ListWishlist(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.Wishlist.List(ctx, authmw.PrincipalFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, products)
}

func (h *ShoppingHTTP) SyncCart(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.SyncCartRequest
	if err := c.Bind(&req); err != nil {
		return respondFailure(c, http.StatusBadRequest, "Invalid body")
	}

	if err := h.Cart.SyncCart(ctx, authmw.PrincipalFrom(c), req); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, http.StatusOK, "Cart synced", nil)
}

func (h *ShoppingHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.Cart.GetCart(ctx, authmw.PrincipalFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, items)
}

func (h *ShoppingHTTP) DashboardStats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.Stats.Dashboard(ctx, authmw.PrincipalFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, stats)
}
