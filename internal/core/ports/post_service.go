package ports

import (
	"context"

	"github.com/inkwell/publishing-api/internal/core/domain"
)

// CreatePostInput carries the data for a new post. AuthorID comes from the
// verified token, never from the request body.
type CreatePostInput struct {
	AuthorID string
	Title    string
	Body     string
}

// UpdatePostInput carries a partial update; nil fields stay unchanged.
type UpdatePostInput struct {
	Title *string
	Body  *string
}

// ListPostsInput carries parameters for the public post listing.
type ListPostsInput struct {
	AuthorID string
	Page     int
	Limit    int
}

// ListPostsResult is a page of posts plus pagination metadata.
type ListPostsResult struct {
	Items      []*domain.Post
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// PostService defines use-case operations for posts.
type PostService interface {
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	Get(ctx context.Context, postID string) (*domain.Post, error)
	List(ctx context.Context, input ListPostsInput) (*ListPostsResult, error)
	Update(ctx context.Context, requesterID, postID string, input UpdatePostInput) (*domain.Post, error)
	// Delete removes the post and cascades to its comments.
	Delete(ctx context.Context, requesterID, postID string) error
}
