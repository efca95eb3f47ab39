package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/medroster/roster-system/internal/api/middleware"
	"github.com/medroster/roster-system/internal/core/domain"
)

// requireIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call. Presence of a valid role proves the
// middleware ran; its absence means the route was wired without the gate.
func requireIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok || !identity.Role.Valid() {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return identity, nil
}
