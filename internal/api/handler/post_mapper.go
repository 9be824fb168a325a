package handler

import (
	"github.com/inkwell/publishing-api/internal/core/domain"
	"github.com/inkwell/publishing-api/internal/core/ports"
)

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Title:     p.Title,
		Body:      p.Body,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}
}

func toListPostsResponse(r *ports.ListPostsResult) listPostsResponse {
	items := make([]postResponse, len(r.Items))
	for i, p := range r.Items {
		items[i] = toPostResponse(p)
	}
	return listPostsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Body:      c.Body,
		CreatedAt: c.CreatedAt.UTC(),
	}
}

func toCommentListResponse(comments []*domain.Comment) []commentResponse {
	out := make([]commentResponse, len(comments))
	for i, c := range comments {
		out[i] = toCommentResponse(c)
	}
	return out
}
