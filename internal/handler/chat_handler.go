package handler

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/Harshaaa-a/finbuddychatbot-sub000/internal/service"
	"github.com/Harshaaa-a/finbuddychatbot-sub000/pkg/prompt"

	"github.com/gin-gonic/gin"
)

// requestTimeout is the outer deadline for one chat request; the news read
// and generation calls carry their own shorter deadlines inside it.
const requestTimeout = 30 * time.Second

type ChatService interface {
	Chat(ctx context.Context, input service.ChatInput) (string, error)
}

type ChatHandler struct {
	chat    ChatService
	limiter *Limiter
}

func NewChatHandler(chat ChatService, limiter *Limiter) *ChatHandler {
	return &ChatHandler{chat: chat, limiter: limiter}
}

func (h *ChatHandler) PostChat(c *gin.Context) {
	if h.limiter != nil {
		allowed, resetIn := h.limiter.Allow(c.Request.Context(), c.ClientIP())
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(resetIn)))
			c.JSON(http.StatusTooManyRequests, ChatResponse{
				Success: false,
				Error:   "Rate limit exceeded. Please wait a moment before asking again.",
			})
			return
		}
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ChatResponse{Success: false, Error: "Message is required"})
		return
	}

	if req.Message == "" {
		c.JSON(http.StatusBadRequest, ChatResponse{Success: false, Error: "Message is required"})
		return
	}

	history := make([]prompt.HistoryMessage, 0, len(req.ConversationHistory))
	for _, m := range req.ConversationHistory {
		history = append(history, prompt.HistoryMessage{Text: m.Text, IsUser: m.IsUser})
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	text, err := h.chat.Chat(ctx, service.ChatInput{Message: req.Message, History: history})
	if err != nil {
		switch {
		case prompt.IsValidationError(err):
			c.JSON(http.StatusBadRequest, ChatResponse{Success: false, Error: err.Error()})
		case errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusRequestTimeout, ChatResponse{
				Success: false,
				Error:   "Request timed out. Please try again.",
			})
		default:
			slog.Error("error handling chat request", "error", err)
			c.JSON(http.StatusInternalServerError, ChatResponse{
				Success: false,
				Error:   "Internal server error. Please try again.",
			})
		}
		return
	}

	c.JSON(http.StatusOK, ChatResponse{Success: true, Message: text})
}

func retryAfterSeconds(resetIn time.Duration) int {
	secs := int(math.Ceil(resetIn.Seconds()))
	if secs < 1 {
		secs = 1
	}
	return secs
}
