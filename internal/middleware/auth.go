package middleware

import (
	"net/http"
	"strings"

	profileRepo "github.com/defff666/cryptodivebot/internal/repository/profile"
	"github.com/defff666/cryptodivebot/pkg/webtoken"
	"github.com/labstack/echo"
)

// ContextUserID is the echo context key for the authenticated Telegram id.
const ContextUserID = "userID"

// WebTokenMiddleware authenticates the web form's bearer token and stores
// the user id in the request context. Registration must work before a
// profile exists, so no profile lookup happens here.
func WebTokenMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "missing token"})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "invalid token format"})
			}

			claims, err := webtoken.Validate(secret, parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "invalid token"})
			}

			c.Set(ContextUserID, claims.UserID)
			return next(c)
		}
	}
}

// UserID reads the authenticated id set by WebTokenMiddleware.
func UserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(ContextUserID).(int64)
	return id, ok
}

// BlockedGuard rejects requests from banned profiles. Unregistered users
// pass through; handlers surface their own not-found conditions.
func BlockedGuard(profiles profileRepo.IProfileRepo) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := UserID(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"message": "missing token"})
			}

			profile, err := profiles.Get(c.Request().Context(), id)
			if err == nil && profile.Blocked {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "account is blocked"})
			}
			return next(c)
		}
	}
}
