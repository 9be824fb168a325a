package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/publishing-api/internal/core/ports"
)

// CommentHandler handles HTTP requests for comment operations.
type CommentHandler struct {
	service ports.CommentService
}

func NewCommentHandler(service ports.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create handles POST /posts/:id/comments.
//
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Post id"
// @Param        body  body      createCommentRequest  true  "Comment content"
// @Success      201   {object}  commentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /posts/{id}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	authorID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.Create(c.Request().Context(), ports.CreateCommentInput{
		AuthorID: authorID,
		PostID:   c.Param("id"),
		Body:     req.Body,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toCommentResponse(comment))
}

// ListForPost handles GET /posts/:id/comments. Public read, oldest first.
//
// @Summary      List a post's comments
// @Tags         comments
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {array}   commentResponse
// @Router       /posts/{id}/comments [get]
func (h *CommentHandler) ListForPost(c echo.Context) error {
	comments, err := h.service.ListForPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCommentListResponse(comments))
}

// Delete handles DELETE /comments/:id. Author only.
//
// @Summary      Delete a comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id  path  string  true  "Comment id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	requesterID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), requesterID, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
