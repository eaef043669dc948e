package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Harshaaa-a/finbuddychatbot-sub000/internal/model"

	"github.com/gin-gonic/gin"
)

type IngestService interface {
	Ingest(ctx context.Context) (model.IngestReport, error)
	APIConfigured() bool
}

type NewsCounter interface {
	Count(ctx context.Context) (int, error)
}

type NewsHandler struct {
	ingest IngestService
	store  NewsCounter
}

func NewNewsHandler(ingest IngestService, store NewsCounter) *NewsHandler {
	return &NewsHandler{ingest: ingest, store: store}
}

// PostFetchNews triggers one ingestion cycle. The external scheduler hits
// this every few hours.
func (h *NewsHandler) PostFetchNews(c *gin.Context) {
	report, err := h.ingest.Ingest(c.Request.Context())
	if err != nil {
		slog.Error("news ingestion failed", "error", err)
		c.JSON(http.StatusInternalServerError, IngestResponse{
			Success: false,
			Error:   "News ingestion failed. Please try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, IngestResponse{
		Success: true,
		Message: fmt.Sprintf("Stored %d new headlines, removed %d old ones", report.Inserted, report.Deleted),
		Data: &IngestData{
			Inserted:    report.Inserted,
			Deleted:     report.Deleted,
			TotalStored: report.TotalStored,
		},
	})
}

// GetFetchNews is the ingestion health probe.
func (h *NewsHandler) GetFetchNews(c *gin.Context) {
	count, err := h.store.Count(c.Request.Context())
	if err != nil {
		slog.Error("error counting stored headlines", "error", err)
	}

	c.JSON(http.StatusOK, NewsStatusResponse{
		Success: true,
		Status: NewsStatus{
			DatabaseHealthy: err == nil,
			NewsCount:       count,
			APIConfigured:   h.ingest.APIConfigured(),
		},
	})
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	_, err := h.store.Count(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}
