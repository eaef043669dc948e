package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the HTTP surface. Kept here rather than in cmd/api so the
// handler tests exercise the same CORS and method-not-allowed behavior the
// server ships with.
func NewRouter(chat *ChatHandler, news *NewsHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CORSMiddleware())
	r.HandleMethodNotAllowed = true

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ChatResponse{
			Success: false,
			Error:   "Method not allowed. Use POST.",
		})
	})

	r.POST("/chat", chat.PostChat)
	r.POST("/fetchNews", news.PostFetchNews)
	r.GET("/fetchNews", news.GetFetchNews)
	r.GET("/health", news.GetHealth)

	return r
}
