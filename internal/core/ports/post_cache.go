package ports

import (
	"context"

	"github.com/inkwell/publishing-api/internal/core/domain"
)

// PostCache is a read-through cache for single-post lookups. A miss returns
// (nil, nil); cache failures are reported as errors but callers degrade to
// the repository rather than failing the request.
type PostCache interface {
	Get(ctx context.Context, postID string) (*domain.Post, error)
	Set(ctx context.Context, post *domain.Post) error
	Invalidate(ctx context.Context, postID string) error
}
