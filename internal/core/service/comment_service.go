package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell/publishing-api/internal/api/metrics"
	"github.com/inkwell/publishing-api/internal/core/domain"
	"github.com/inkwell/publishing-api/internal/core/ports"
)

// CommentService implements comment creation, listing, and author-only
// deletion.
type CommentService struct {
	repo     ports.CommentRepository
	posts    ports.PostRepository
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewCommentService(repo ports.CommentRepository, posts ports.PostRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *CommentService {
	return &CommentService{repo: repo, posts: posts, activity: activity, logger: logger}
}

// Create attaches a comment to an existing post. The post lookup doubles as
// the race check against a concurrent post delete: once the post document is
// gone, comment creation fails with ErrPostNotFound.
func (s *CommentService) Create(ctx context.Context, input ports.CreateCommentInput) (*domain.Comment, error) {
	if input.AuthorID == "" {
		return nil, domain.ErrUnauthorized
	}
	if input.Body == "" {
		return nil, fmt.Errorf("%w: body is required", domain.ErrValidation)
	}

	if _, err := s.posts.FindByID(ctx, input.PostID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		PostID:    input.PostID,
		AuthorID:  input.AuthorID,
		Body:      input.Body,
		CreatedAt: now,
	}

	created, err := s.repo.Create(ctx, comment)
	if err != nil {
		s.logger.Error().Err(err).Str("post_id", input.PostID).Msg("failed to create comment")
		return nil, err
	}

	metrics.CommentsCreatedTotal.Inc()
	s.activity.Record(domain.ActivityEvent{
		EntityType: domain.EntityComment,
		EntityID:   created.ID,
		Action:     domain.ActionCreated,
		ActorID:    input.AuthorID,
		OccurredAt: now,
	})

	return created, nil
}

// ListForPost returns the post's comments oldest first. A post with no
// comments (or no post at all) yields an empty slice; distinguishing a
// missing post is the caller's job via a separate post lookup.
func (s *CommentService) ListForPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	return s.repo.ListByPost(ctx, postID)
}

// Delete removes a comment after the ownership check.
func (s *CommentService) Delete(ctx context.Context, requesterID, commentID string) error {
	comment, err := s.repo.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if err := domain.AuthorizeOwner(requesterID, comment.AuthorID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, commentID); err != nil {
		return err
	}

	s.activity.Record(domain.ActivityEvent{
		EntityType: domain.EntityComment,
		EntityID:   commentID,
		Action:     domain.ActionDeleted,
		ActorID:    requesterID,
		OccurredAt: time.Now().UTC(),
	})

	return nil
}
