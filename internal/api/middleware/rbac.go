package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/medroster/roster-system/internal/core/domain"
)

// RBAC restricts an operation to the given set of roles. It must run after
// Auth: a request that reaches it without a verified identity is treated as
// unauthenticated, not forbidden.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[identity.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
