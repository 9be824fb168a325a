package ports

import (
	"context"

	"github.com/inkwell/publishing-api/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	// ListByPost returns all comments for a post ordered by created_at
	// ascending. A missing post yields an empty slice, not an error.
	ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	Delete(ctx context.Context, id string) error
	// DeleteByPost removes every comment attached to the post and reports
	// how many were deleted. Used by the post delete cascade.
	DeleteByPost(ctx context.Context, postID string) (int64, error)
}
