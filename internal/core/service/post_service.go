package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell/publishing-api/internal/api/metrics"
	"github.com/inkwell/publishing-api/internal/core/domain"
	"github.com/inkwell/publishing-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// PostService implements post CRUD with author-only mutation and the
// comment cascade on delete.
type PostService struct {
	repo     ports.PostRepository
	comments ports.CommentRepository
	cache    ports.PostCache
	activity ports.ActivityRecorder
	logger   zerolog.Logger
}

func NewPostService(repo ports.PostRepository, comments ports.CommentRepository, cache ports.PostCache, activity ports.ActivityRecorder, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, comments: comments, cache: cache, activity: activity, logger: logger}
}

// Create stores a new post owned by the authenticated author.
func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	if input.AuthorID == "" {
		return nil, domain.ErrUnauthorized
	}
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	now := time.Now().UTC()
	post := &domain.Post{
		AuthorID:  input.AuthorID,
		Title:     input.Title,
		Body:      input.Body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("author_id", input.AuthorID).Msg("failed to create post")
		return nil, err
	}

	metrics.PostsCreatedTotal.Inc()
	s.activity.Record(domain.ActivityEvent{
		EntityType: domain.EntityPost,
		EntityID:   created.ID,
		Action:     domain.ActionCreated,
		ActorID:    input.AuthorID,
		OccurredAt: now,
	})
	s.logger.Info().Str("post_id", created.ID).Str("author_id", input.AuthorID).Msg("post created")

	return created, nil
}

// Get returns a post by id. Reads are public; no identity is required.
// Lookups go through the cache first and fall back to the repository.
func (s *PostService) Get(ctx context.Context, postID string) (*domain.Post, error) {
	if cached, err := s.cache.Get(ctx, postID); err != nil {
		metrics.PostCacheTotal.WithLabelValues("error").Inc()
		s.logger.Warn().Err(err).Str("post_id", postID).Msg("post cache read failed")
	} else if cached != nil {
		metrics.PostCacheTotal.WithLabelValues("hit").Inc()
		return cached, nil
	} else {
		metrics.PostCacheTotal.WithLabelValues("miss").Inc()
	}

	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, post); err != nil {
		s.logger.Warn().Err(err).Str("post_id", postID).Msg("post cache write failed")
	}
	return post, nil
}

// List returns a page of posts, newest first.
func (s *PostService) List(ctx context.Context, input ports.ListPostsInput) (*ports.ListPostsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListPostsFilter{
		AuthorID: input.AuthorID,
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.ListPostsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// Update applies a partial update after the ownership check and bumps
// updated_at.
func (s *PostService) Update(ctx context.Context, requesterID, postID string, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeOwner(requesterID, post.AuthorID); err != nil {
		return nil, err
	}
	if input.Title != nil && *input.Title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrValidation)
	}

	updated, err := s.repo.Update(ctx, postID, ports.PostUpdate{Title: input.Title, Body: input.Body})
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, postID); err != nil {
		s.logger.Warn().Err(err).Str("post_id", postID).Msg("post cache invalidation failed")
	}
	s.activity.Record(domain.ActivityEvent{
		EntityType: domain.EntityPost,
		EntityID:   postID,
		Action:     domain.ActionUpdated,
		ActorID:    requesterID,
		OccurredAt: time.Now().UTC(),
	})

	return updated, nil
}

// Delete removes a post after the ownership check, cascading to its
// comments. Comments are deleted first; if the post delete then fails the
// cascade is reported as ErrPartialDelete rather than silently leaving
// orphans.
func (s *PostService) Delete(ctx context.Context, requesterID, postID string) error {
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if err := domain.AuthorizeOwner(requesterID, post.AuthorID); err != nil {
		return err
	}

	removed, err := s.comments.DeleteByPost(ctx, postID)
	if err != nil {
		return fmt.Errorf("delete post %s: cascade comments: %w", postID, err)
	}
	metrics.CascadeDeletedCommentsTotal.Add(float64(removed))

	if err := s.repo.Delete(ctx, postID); err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			// A concurrent delete removed the post first. Both the post
			// and its comments are gone, which is the state this call was
			// after, so it is not a partial failure.
			s.logger.Info().Str("post_id", postID).Msg("post already deleted by concurrent request")
			return nil
		}
		metrics.CascadePartialFailuresTotal.Inc()
		s.logger.Error().Err(err).
			Str("post_id", postID).
			Int64("comments_removed", removed).
			Msg("post delete failed after comments were removed")
		return fmt.Errorf("%w: post %s survived after %d comments were removed: %v",
			domain.ErrPartialDelete, postID, removed, err)
	}

	if err := s.cache.Invalidate(ctx, postID); err != nil {
		s.logger.Warn().Err(err).Str("post_id", postID).Msg("post cache invalidation failed")
	}
	s.activity.Record(domain.ActivityEvent{
		EntityType: domain.EntityPost,
		EntityID:   postID,
		Action:     domain.ActionDeleted,
		ActorID:    requesterID,
		OccurredAt: time.Now().UTC(),
	})
	s.logger.Info().Str("post_id", postID).Int64("comments_removed", removed).Msg("post deleted")

	return nil
}
