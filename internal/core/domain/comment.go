package domain

import "time"

// Comment belongs to exactly one post. PostID and AuthorID are immutable;
// a comment disappears either when its author deletes it or when the parent
// post is deleted (cascade).
type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
