package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	authmw "github.com/flashfiesta/backend/internal/middleware/auth"
	"github.com/flashfiesta/backend/internal/service"
	"github.com/flashfiesta/backend/internal/transport"
	"github.com/flashfiesta/backend/pkg/logging"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.place")

	var req transport.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("place_order_error", "status", 400, "reason", "invalid body", "error", err)
		return respondFailure(c, http.StatusBadRequest, "Invalid body")
	}

	order, err := h.Svc.PlaceOrder(ctx, authmw.PrincipalFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}

	l.Info("place_order_success", "order_id", order.ID)
	return respondMessage(c, http.StatusCreated, "Order placed successfully", map[string]any{
		"order_id": order.ID.String(),
	})
}

func (h *OrderHTTP) MyOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.Svc.MyOrders(ctx, authmw.PrincipalFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, orders)
}

func (h *OrderHTTP) AllOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.Svc.AllOrders(ctx, authmw.PrincipalFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, orders)
}

func (h *OrderHTTP) OrderDetail(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondFailure(c, http.StatusBadRequest, "Invalid id")
	}

	order, err := h.Svc.OrderDetail(ctx, authmw.PrincipalFrom(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, order)
}

func (h *OrderHTTP) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondFailure(c, http.StatusBadRequest, "Invalid id")
	}

	var req transport.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return respondFailure(c, http.StatusBadRequest, "Invalid body")
	}

	if err := h.Svc.UpdateStatus(ctx, authmw.PrincipalFrom(c), id, req.Status); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, http.StatusOK, "Status updated", nil)
}
