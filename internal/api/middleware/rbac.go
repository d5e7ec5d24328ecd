package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/projecthub/projecthub/internal/core/domain"
)

// RequireRole enforces a minimum role for an operation: admin satisfies
// every requirement, user satisfies only RoleUser. Insufficient role is a
// 403, distinct from the 401 produced when authentication never happened.
func RequireRole(minimum domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(UserContextKey).(*domain.User)
			if !ok || user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !user.Role.Satisfies(minimum) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
