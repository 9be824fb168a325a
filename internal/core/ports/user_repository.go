package ports

import (
	"context"

	"github.com/inkwell/publishing-api/internal/core/domain"
)

// UserRepository defines persistence operations for users. Users are never
// hard-deleted; there is deliberately no Delete method.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// UpdateProfile persists the mutable profile fields and returns the
	// updated document.
	UpdateProfile(ctx context.Context, id string, displayName string) (*domain.User, error)
}
