package ports

import (
	"context"

	"github.com/medroster/roster-system/internal/core/domain"
)

// UserRepository defines the interface for user credential persistence.
// Email uniqueness is the repository's invariant: Create must fail with
// domain.ErrEmailExists rather than overwrite an existing record.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
