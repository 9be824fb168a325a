package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/publishing-api/internal/api/middleware"
	"github.com/inkwell/publishing-api/internal/core/domain"
	"github.com/inkwell/publishing-api/internal/core/ports"
)

type stubPostService struct {
	createFn func(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error)
	getFn    func(ctx context.Context, postID string) (*domain.Post, error)
	listFn   func(ctx context.Context, input ports.ListPostsInput) (*ports.ListPostsResult, error)
	updateFn func(ctx context.Context, requesterID, postID string, input ports.UpdatePostInput) (*domain.Post, error)
	deleteFn func(ctx context.Context, requesterID, postID string) error
}

func (s *stubPostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	return s.createFn(ctx, input)
}

func (s *stubPostService) Get(ctx context.Context, postID string) (*domain.Post, error) {
	return s.getFn(ctx, postID)
}

func (s *stubPostService) List(ctx context.Context, input ports.ListPostsInput) (*ports.ListPostsResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubPostService) Update(ctx context.Context, requesterID, postID string, input ports.UpdatePostInput) (*domain.Post, error) {
	return s.updateFn(ctx, requesterID, postID, input)
}

func (s *stubPostService) Delete(ctx context.Context, requesterID, postID string) error {
	return s.deleteFn(ctx, requesterID, postID)
}

func TestPostHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		createFn: func(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
			if input.AuthorID != "user-1" || input.Title != "Hi" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Post{ID: "post-1", AuthorID: input.AuthorID, Title: input.Title, Body: input.Body}, nil
		},
	}
	handler := NewPostHandler(stub)

	req := jsonRequest(http.MethodPost, "/posts", `{"title":"Hi","body":"World"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, "user-1")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "post-1" || resp["author_id"] != "user-1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPostHandler_Create_RequiresIdentity(t *testing.T) {
	e := newTestEcho()
	handler := NewPostHandler(&stubPostService{
		createFn: func(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	req := jsonRequest(http.MethodPost, "/posts", `{"title":"Hi"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestPostHandler_Create_MissingTitle(t *testing.T) {
	e := newTestEcho()
	handler := NewPostHandler(&stubPostService{
		createFn: func(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	req := jsonRequest(http.MethodPost, "/posts", `{"body":"no title"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, "user-1")

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestPostHandler_Get(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		getFn: func(ctx context.Context, postID string) (*domain.Post, error) {
			if postID != "post-1" {
				return nil, domain.ErrPostNotFound
			}
			return &domain.Post{ID: "post-1", AuthorID: "user-1", Title: "Hi"}, nil
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/posts/post-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("post-1")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPostHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	handler := NewPostHandler(&stubPostService{
		getFn: func(ctx context.Context, postID string) (*domain.Post, error) {
			return nil, domain.ErrPostNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/posts/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := handler.Get(c); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostHandler_List_ParsesQuery(t *testing.T) {
	e := newTestEcho()
	stub := &stubPostService{
		listFn: func(ctx context.Context, input ports.ListPostsInput) (*ports.ListPostsResult, error) {
			if input.Page != 2 || input.Limit != 5 || input.AuthorID != "user-1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.ListPostsResult{
				Items: []*domain.Post{{ID: "post-1"}},
				Total: 6, Page: 2, Limit: 5, TotalPages: 2,
			}, nil
		},
	}
	handler := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/posts?page=2&limit=5&author_id=user-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	pagination, ok := resp["pagination"].(map[string]any)
	if !ok {
		t.Fatalf("expected pagination in response: %+v", resp)
	}
	if pagination["total"] != float64(6) || pagination["total_pages"] != float64(2) {
		t.Fatalf("unexpected pagination: %+v", pagination)
	}
}

func TestPostHandler_Update_Forbidden(t *testing.T) {
	e := newTestEcho()
	handler := NewPostHandler(&stubPostService{
		updateFn: func(ctx context.Context, requesterID, postID string, input ports.UpdatePostInput) (*domain.Post, error) {
			return nil, domain.ErrForbidden
		},
	})

	req := jsonRequest(http.MethodPatch, "/posts/post-1", `{"title":"New"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("post-1")
	c.Set(middleware.ContextUserID, "user-2")

	if err := handler.Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestPostHandler_Delete_Success(t *testing.T) {
	e := newTestEcho()
	deleted := false
	handler := NewPostHandler(&stubPostService{
		deleteFn: func(ctx context.Context, requesterID, postID string) error {
			if requesterID != "user-1" || postID != "post-1" {
				t.Fatalf("unexpected args: %s %s", requesterID, postID)
			}
			deleted = true
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/posts/post-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("post-1")
	c.Set(middleware.ContextUserID, "user-1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !deleted {
		t.Fatal("service delete not called")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
