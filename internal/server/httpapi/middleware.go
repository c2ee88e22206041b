package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/authgate/internal/common"
	"github.com/labstack/echo/v4"
)

const userIDContextKey = "user_id"

// Authenticator verifies a bearer token and yields the subject user id.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// RequireAuth guards protected routes. A missing, malformed, expired or
// badly signed token is rejected uniformly with 401 "unauthenticated".
func RequireAuth(a Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearerToken(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Kind: common.KindUnauthorized, Message: "unauthenticated"})
			}

			userID, err := a.Authenticate(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Kind: common.KindUnauthorized, Message: "unauthenticated"})
			}

			c.Set(userIDContextKey, userID)
			return next(c)
		}
	}
}

// extractBearerToken returns the token from "Authorization: Bearer <token>",
// or "" when the header is absent or malformed.
func extractBearerToken(c echo.Context) string {
	header := c.Request().Header.Get(common.AuthorizationHeaderName)
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], common.BearerPrefix) {
		return ""
	}

	return parts[1]
}

// UserIDFromContext returns the authenticated user id set by RequireAuth,
// or "" when the request was not authenticated.
func UserIDFromContext(c echo.Context) string {
	id, _ := c.Get(userIDContextKey).(string)
	return id
}
