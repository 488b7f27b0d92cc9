package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flashfiesta/backend/internal/authz"
	"github.com/flashfiesta/backend/internal/repo"
	"github.com/flashfiesta/backend/internal/service"
	"github.com/flashfiesta/backend/pkg/logging"
)

// Application status codes carried in every response body, independent
// of the HTTP status: 6000 on success, 6001 on any application failure.
const (
	statusOK     = 6000
	statusFailed = 6001
)

func respondData(c echo.Context, httpCode int, data any) error {
	return c.JSON(httpCode, map[string]any{
		"Status": statusOK,
		"data":   data,
	})
}

func respondMessage(c echo.Context, httpCode int, message string, extra map[string]any) error {
	body := map[string]any{
		"Status":  statusOK,
		"message": message,
	}
	for k, v := range extra {
		body[k] = v
	}
	return c.JSON(httpCode, body)
}

func respondFailure(c echo.Context, httpCode int, message string) error {
	return c.JSON(httpCode, map[string]any{
		"Status":  statusFailed,
		"message": message,
	})
}

// respondError maps service errors onto the envelope. Unknown errors
// are logged and surfaced generically instead of leaking internals.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return respondFailure(c, http.StatusBadRequest, firstDetail(err, "Validation error"))
	case errors.Is(err, service.ErrNotFound), errors.Is(err, repo.ErrProductNotFound):
		return respondFailure(c, http.StatusNotFound, firstDetail(err, "Not found"))
	case errors.Is(err, authz.ErrPermissionDenied):
		return respondFailure(c, http.StatusForbidden, "Access denied")
	case errors.Is(err, service.ErrNotEligible):
		return respondFailure(c, http.StatusForbidden,
			"Verified Purchase Required: You can only review products that have been delivered to you.")
	case errors.Is(err, repo.ErrInvalidCredentials):
		return respondFailure(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, repo.ErrInsufficientStock):
		return respondFailure(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidRefreshToken):
		return respondFailure(c, http.StatusUnauthorized, "Invalid refresh token")
	default:
		logging.FromContext(c.Request().Context()).Error("unhandled error", "error", err)
		return respondFailure(c, http.StatusBadRequest, "Something went wrong")
	}
}

// firstDetail surfaces the first offending field's message if the error
// carries one, else the fallback.
func firstDetail(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	msg := err.Error()
	if msg == "" {
		return fallback
	}
	return msg
}
