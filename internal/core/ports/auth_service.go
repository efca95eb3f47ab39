package ports

import (
	"context"

	"github.com/medroster/roster-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password string, role domain.Role) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// TokenVerifier checks a bearer token's signature and expiry and returns the
// identity it asserts. Verification is pure computation and performs no I/O.
type TokenVerifier interface {
	VerifyToken(token string) (*domain.Identity, error)
}
