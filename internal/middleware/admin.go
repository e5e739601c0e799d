package middleware

import (
	"net/http"

	"github.com/labstack/echo"
)

// AdminMiddleware restricts a route group to the configured admin ids.
// Runs after WebTokenMiddleware.
func AdminMiddleware(adminIDs []int64) echo.MiddlewareFunc {
	admins := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := UserID(c)
			if !ok || !admins[id] {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "access denied"})
			}
			return next(c)
		}
	}
}
