package ports

import (
	"context"

	"github.com/inkwell/publishing-api/internal/core/domain"
)

// UpdateProfileInput carries the mutable profile fields. Nil pointers mean
// "leave unchanged" so PATCH semantics survive the transport boundary.
type UpdateProfileInput struct {
	DisplayName *string
}

// UserService covers registration, authentication, and profile management.
type UserService interface {
	Register(ctx context.Context, username, password, displayName string) (*domain.User, error)
	// Login verifies credentials and returns a signed identity token plus
	// the public user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, requesterID, targetID string, input UpdateProfileInput) (*domain.User, error)
}
