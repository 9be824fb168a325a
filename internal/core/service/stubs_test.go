package service

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/inkwell/publishing-api/internal/core/domain"
	"github.com/inkwell/publishing-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu      sync.Mutex
	users   map[string]*domain.User // by id
	nextID  int
	findErr error // if set, FindByUsername returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := cloneUser(user)
	clone.ID = "user-" + strconv.Itoa(r.nextID)
	r.users[clone.ID] = cloneUser(clone)
	return clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id string, displayName string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.DisplayName = displayName
	return cloneUser(u), nil
}

type stubPostRepo struct {
	mu        sync.Mutex
	posts     map[string]*domain.Post
	nextID    int
	deleteErr error // if set, Delete returns this error
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) Create(_ context.Context, post *domain.Post) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	clone := *post
	clone.ID = "post-" + strconv.Itoa(r.nextID)
	r.posts[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) List(_ context.Context, f ports.ListPostsFilter) ([]*domain.Post, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*domain.Post
	for _, p := range r.posts {
		if f.AuthorID != "" && p.AuthorID != f.AuthorID {
			continue
		}
		clone := *p
		matched = append(matched, &clone)
	}

	// created_at desc, id desc tiebreak (mirrors the real Mongo sort)
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	skip := (f.Page - 1) * f.Limit
	if skip < 0 {
		skip = 0
	}
	if skip > len(matched) {
		return []*domain.Post{}, total, nil
	}
	end := skip + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *stubPostRepo) Update(_ context.Context, id string, update ports.PostUpdate) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	if update.Title != nil {
		p.Title = *update.Title
	}
	if update.Body != nil {
		p.Body = *update.Body
	}
	p.UpdatedAt = p.UpdatedAt.Add(1) // strictly later than before
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

type stubCommentRepo struct {
	mu       sync.Mutex
	comments map[string]*domain.Comment
	nextID   int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func (r *stubCommentRepo) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	clone := *comment
	clone.ID = "comment-" + strconv.Itoa(r.nextID)
	r.comments[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCommentRepo) ListByPost(_ context.Context, postID string) ([]*domain.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.Comment{}
	for _, c := range r.comments {
		if c.PostID == postID {
			clone := *c
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

func (r *stubCommentRepo) DeleteByPost(_ context.Context, postID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, c := range r.comments {
		if c.PostID == postID {
			delete(r.comments, id)
			n++
		}
	}
	return n, nil
}

// nopCache satisfies ports.PostCache without caching anything.
type nopCache struct{}

func (nopCache) Get(context.Context, string) (*domain.Post, error) { return nil, nil }
func (nopCache) Set(context.Context, *domain.Post) error           { return nil }
func (nopCache) Invalidate(context.Context, string) error          { return nil }

// memCache is a map-backed ports.PostCache for cache behaviour tests.
type memCache struct {
	mu      sync.Mutex
	entries map[string]*domain.Post
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string]*domain.Post)}
}

func (c *memCache) Get(_ context.Context, postID string) (*domain.Post, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.entries[postID]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (c *memCache) Set(_ context.Context, post *domain.Post) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clone := *post
	c.entries[post.ID] = &clone
	return nil
}

func (c *memCache) Invalidate(_ context.Context, postID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, postID)
	return nil
}

// recordingActivity captures recorded events synchronously.
type recordingActivity struct {
	mu     sync.Mutex
	events []domain.ActivityEvent
}

func (r *recordingActivity) Record(event domain.ActivityEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingActivity) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}
