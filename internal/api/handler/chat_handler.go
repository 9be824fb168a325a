package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/publishing-api/internal/core/ports"
)

// ChatAsker is the interface the handler needs from the chat service.
type ChatAsker interface {
	Ask(ctx context.Context, text string) (string, error)
	History(ctx context.Context) ([]*ports.ChatExchange, error)
}

// ChatHandler proxies to the external answering service.
type ChatHandler struct {
	service ChatAsker
}

func NewChatHandler(service ChatAsker) *ChatHandler {
	return &ChatHandler{service: service}
}

type chatAskRequest struct {
	Text string `json:"text" validate:"required"`
}

type chatAskResponse struct {
	Answer string `json:"answer"`
}

type chatHistoryResponse struct {
	History []*ports.ChatExchange `json:"history"`
}

// Ask handles POST /chat/ask.
//
// @Summary      Ask the assistant a question
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      chatAskRequest  true  "Question"
// @Success      200   {object}  chatAskResponse
// @Failure      400   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /chat/ask [post]
func (h *ChatHandler) Ask(c echo.Context) error {
	var req chatAskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	answer, err := h.service.Ask(c.Request().Context(), req.Text)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, chatAskResponse{Answer: answer})
}

// History handles GET /chat/history.
//
// @Summary      List stored chat exchanges
// @Tags         chat
// @Produce      json
// @Success      200  {object}  chatHistoryResponse
// @Router       /chat/history [get]
func (h *ChatHandler) History(c echo.Context) error {
	history, err := h.service.History(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatHistoryResponse{History: history})
}
