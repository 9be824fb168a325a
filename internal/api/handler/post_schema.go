package handler

import "time"

type createPostRequest struct {
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body"`
}

type updatePostRequest struct {
	Title *string `json:"title" validate:"omitempty,max=200"`
	Body  *string `json:"body"`
}

type postResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listPostsResponse struct {
	Data       []postResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
