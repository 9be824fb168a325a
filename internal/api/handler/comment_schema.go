package handler

import "time"

type createCommentRequest struct {
	Body string `json:"body" validate:"required,max=2000"`
}

type commentResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
