package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/salesdeskhq/salesdesk/ent"
	"github.com/salesdeskhq/salesdesk/ent/user"
)

// RequireRole ensures the authenticated user holds one of the given roles.
// Apply AFTER the JWT middleware. The role is re-read from the database so
// role changes take effect before the token expires.
func RequireRole(db *ent.Client, roles ...user.Role) echo.MiddlewareFunc {
	allowed := make(map[user.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get("user_id").(int)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthorized",
					"message": "Authentication required",
				})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
			defer cancel()

			u, err := db.User.Get(ctx, userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "user_not_found",
					"message": "User not found",
				})
			}

			if !allowed[u.Role] {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"error":   "insufficient_permissions",
					"message": "You do not have permission to perform this action",
					"details": map[string]interface{}{
						"current_role": u.Role.String(),
					},
				})
			}

			c.Set("user_role", u.Role.String())

			return next(c)
		}
	}
}

// RequireAdmin restricts a route to admins.
func RequireAdmin(db *ent.Client) echo.MiddlewareFunc {
	return RequireRole(db, user.RoleAdmin)
}

// RequireWriteAccess restricts a route to roles that may modify records.
func RequireWriteAccess(db *ent.Client) echo.MiddlewareFunc {
	return RequireRole(db, user.RoleAdmin, user.RoleManager, user.RoleRep)
}

// RequireDeleteAccess restricts a route to roles that may remove records.
func RequireDeleteAccess(db *ent.Client) echo.MiddlewareFunc {
	return RequireRole(db, user.RoleAdmin, user.RoleManager)
}
