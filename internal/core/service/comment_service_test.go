package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/inkwell/publishing-api/internal/core/domain"
	"github.com/inkwell/publishing-api/internal/core/ports"
)

func newCommentService(comments *stubCommentRepo, posts *stubPostRepo) *CommentService {
	return NewCommentService(comments, posts, &recordingActivity{}, discardLogger)
}

func TestCommentService_Create_Success(t *testing.T) {
	posts := newStubPostRepo()
	postSvc := newPostService(posts, newStubCommentRepo(), nil)
	post := seedPost(t, postSvc, "user-1", "t")

	svc := newCommentService(newStubCommentRepo(), posts)
	comment, err := svc.Create(context.Background(), ports.CreateCommentInput{
		PostID:   post.ID,
		AuthorID: "user-2",
		Body:     "first!",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comment.ID == "" {
		t.Fatal("expected assigned id")
	}
	if comment.PostID != post.ID || comment.AuthorID != "user-2" {
		t.Fatalf("unexpected comment: %+v", comment)
	}
	if comment.CreatedAt.IsZero() {
		t.Fatal("created_at must be set")
	}
}

func TestCommentService_Create_RequiresIdentity(t *testing.T) {
	svc := newCommentService(newStubCommentRepo(), newStubPostRepo())

	_, err := svc.Create(context.Background(), ports.CreateCommentInput{PostID: "post-1", Body: "hi"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestCommentService_Create_RequiresBody(t *testing.T) {
	svc := newCommentService(newStubCommentRepo(), newStubPostRepo())

	_, err := svc.Create(context.Background(), ports.CreateCommentInput{PostID: "post-1", AuthorID: "user-1"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

// A comment aimed at a post that was deleted in the meantime must be
// rejected, not written as an orphan.
func TestCommentService_Create_PostGone(t *testing.T) {
	posts := newStubPostRepo()
	postSvc := newPostService(posts, newStubCommentRepo(), nil)
	post := seedPost(t, postSvc, "user-1", "t")

	if err := postSvc.Delete(context.Background(), "user-1", post.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	svc := newCommentService(newStubCommentRepo(), posts)
	_, err := svc.Create(context.Background(), ports.CreateCommentInput{
		PostID:   post.ID,
		AuthorID: "user-2",
		Body:     "too late",
	})
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCommentService_ListForPost_OldestFirst(t *testing.T) {
	posts := newStubPostRepo()
	comments := newStubCommentRepo()
	postSvc := newPostService(posts, comments, nil)
	post := seedPost(t, postSvc, "user-1", "t")

	base := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	for i := 2; i >= 0; i-- {
		if _, err := comments.Create(context.Background(), &domain.Comment{
			PostID:    post.ID,
			AuthorID:  "user-2",
			Body:      "c",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}); err != nil {
			t.Fatal(err)
		}
	}

	svc := newCommentService(comments, posts)
	got, err := svc.ListForPost(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].CreatedAt.Before(got[i-1].CreatedAt) {
			t.Fatalf("comments not in ascending created_at order")
		}
	}
}

func TestCommentService_ListForPost_Empty(t *testing.T) {
	svc := newCommentService(newStubCommentRepo(), newStubPostRepo())

	got, err := svc.ListForPost(context.Background(), "post-without-comments")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestCommentService_Delete_OwnerOnly(t *testing.T) {
	posts := newStubPostRepo()
	comments := newStubCommentRepo()
	postSvc := newPostService(posts, comments, nil)
	post := seedPost(t, postSvc, "user-1", "t")

	svc := newCommentService(comments, posts)
	comment, err := svc.Create(context.Background(), ports.CreateCommentInput{
		PostID: post.ID, AuthorID: "user-2", Body: "mine",
	})
	if err != nil {
		t.Fatal(err)
	}

	// Not even the post author may remove someone else's comment.
	if err := svc.Delete(context.Background(), "user-1", comment.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), "", comment.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for anonymous requester, got %v", err)
	}

	if err := svc.Delete(context.Background(), "user-2", comment.ID); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
	if _, err := comments.FindByID(context.Background(), comment.ID); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Fatalf("expected comment gone, got %v", err)
	}
}

func TestCommentService_Delete_NotFound(t *testing.T) {
	svc := newCommentService(newStubCommentRepo(), newStubPostRepo())

	if err := svc.Delete(context.Background(), "user-1", "missing"); !errors.Is(err, domain.ErrCommentNotFound) {
		t.Fatalf("expected ErrCommentNotFound, got %v", err)
	}
}
