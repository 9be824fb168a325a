package ports

import (
	"context"

	"github.com/inkwell/publishing-api/internal/core/domain"
)

// CreateCommentInput carries the data for a new comment.
type CreateCommentInput struct {
	AuthorID string
	PostID   string
	Body     string
}

// CommentService defines use-case operations for comments.
type CommentService interface {
	Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error)
	ListForPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	Delete(ctx context.Context, requesterID, commentID string) error
}
