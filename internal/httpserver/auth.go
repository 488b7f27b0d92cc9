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

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "reason", "invalid body", "error", err)
		return respondFailure(c, http.StatusBadRequest, "Invalid body")
	}

	user, pair, err := h.Svc.Register(ctx, req)
	if err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, http.StatusCreated, "User registered successfully", map[string]any{
		"username": user.Username,
		"role":     user.Profile.Role,
		"tokens":   pair,
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "reason", "invalid body", "error", err)
		return respondFailure(c, http.StatusBadRequest, "Invalid body")
	}

	user, pair, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return respondMessage(c, http.StatusOK, "Login successful", map[string]any{
		"username": user.Username,
		"role":     user.Profile.Role,
		"tokens":   pair,
	})
}

func (h *AuthHTTP) Refresh(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return respondFailure(c, http.StatusBadRequest, "Invalid body")
	}

	pair, err := h.Svc.Refresh(ctx, req.Refresh)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, pair)
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return respondFailure(c, http.StatusBadRequest, "Invalid body")
	}

	if err := h.Svc.Logout(ctx, req.Refresh); err != nil {
		return respondError(c, err)
	}
	return respondMessage(c, http.StatusOK, "Logged out", nil)
}

func (h *AuthHTTP) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.Svc.GetProfile(ctx, authmw.PrincipalFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, user)
}

func (h *AuthHTTP) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	var req transport.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return respondFailure(c, http.StatusBadRequest, "Invalid body")
	}

	user, err := h.Svc.UpdateProfile(ctx, authmw.PrincipalFrom(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, user)
}

func (h *AuthHTTP) ListEmployees(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.Svc.ListEmployees(ctx, authmw.PrincipalFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, users)
}

func (h *AuthHTTP) UpdateEmployeePermissions(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return respondFailure(c, http.StatusBadRequest, "Invalid id")
	}

	var req transport.UpdatePermissionsRequest
	if err := c.Bind(&req); err != nil {
		return respondFailure(c, http.StatusBadRequest, "Invalid body")
	}

	user, err := h.Svc.UpdateEmployeePermissions(ctx, authmw.PrincipalFrom(c), id, req)
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, http.StatusOK, user)
}
