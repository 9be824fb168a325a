package ports

import (
	"context"

	"github.com/inkwell/publishing-api/internal/core/domain"
)

// ListPostsFilter carries query parameters for listing posts.
type ListPostsFilter struct {
	AuthorID string // optional: scope to a single author
	Page     int    // 1-based
	Limit    int    // rows per page (capped at 100 by the service)
}

// PostUpdate carries the mutable post fields; nil means unchanged.
type PostUpdate struct {
	Title *string
	Body  *string
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// List returns a page of posts ordered by created_at descending
	// (id descending as tiebreak) and the total match count.
	List(ctx context.Context, filter ListPostsFilter) ([]*domain.Post, int64, error)
	Update(ctx context.Context, id string, update PostUpdate) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
