package auth

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/flashfiesta/backend/internal/authz"
	"github.com/flashfiesta/backend/internal/repo"
	"github.com/flashfiesta/backend/pkg/tokens"
)

const principalKey = "principal"

type Middleware struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]any{
		"Status":  6001,
		"message": "Authentication required",
	})
}

// RequireAuth resolves the bearer token into an explicit Principal
// (user + profile loaded fresh from the store) and stashes it on the
// request. Handlers pass the principal into services; nothing below
// the HTTP layer reads framework state.
func (m *Middleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return unauthorized(c)
		}

		claims, err := tokens.AccessClaimsFromToken(raw, m.JWTSecret)
		if err != nil {
			return unauthorized(c)
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			return unauthorized(c)
		}

		user, err := m.Repo.GetUserByID(c.Request().Context(), userID)
		if err != nil {
			return unauthorized(c)
		}

		c.Set(principalKey, &authz.Principal{
			UserID:   user.ID,
			Username: user.Username,
			Profile:  user.Profile,
		})
		return next(c)
	}
}

// PrincipalFrom returns the authenticated caller, or nil on ungated routes.
func PrincipalFrom(c echo.Context) *authz.Principal {
	if v := c.Get(principalKey); v != nil {
		if p, ok := v.(*authz.Principal); ok {
			return p
		}
	}
	return nil
}
