package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Harshaaa-a/finbuddychatbot-sub000/internal/model"
	"github.com/Harshaaa-a/finbuddychatbot-sub000/pkg/news"
)

// fetchBatchSize bounds how many headlines one cycle pulls from a provider.
const fetchBatchSize = 10

type NewsStore interface {
	InsertBatch(ctx context.Context, items []model.NewsItem) (int, error)
	ExistsByHeadline(ctx context.Context, headline string) (bool, error)
	GetLatest(ctx context.Context, limit int) ([]model.NewsItem, error)
	TrimToLatest(ctx context.Context, n int) (int, error)
	Count(ctx context.Context) (int, error)
}

type IngestService struct {
	store   NewsStore
	clients []news.Client
}

func NewIngestService(store NewsStore, clients []news.Client) *IngestService {
	return &IngestService{store: store, clients: clients}
}

// APIConfigured reports whether at least one news provider has credentials.
func (s *IngestService) APIConfigured() bool {
	return len(s.clients) > 0
}

// Ingest runs one fetch-dedupe-insert-trim cycle. Provider failures fall back
// to the built-in headline set; only a store failure makes the cycle fail.
func (s *IngestService) Ingest(ctx context.Context) (model.IngestReport, error) {
	headlines := s.fetch(ctx)

	seen := make(map[string]bool)
	var fresh []model.NewsItem
	for _, h := range headlines {
		if h.Title == "" || seen[h.Title] {
			continue
		}
		seen[h.Title] = true

		exists, err := s.store.ExistsByHeadline(ctx, h.Title)
		if err != nil {
			return model.IngestReport{}, fmt.Errorf("checking duplicate headline: %w", err)
		}
		if exists {
			continue
		}

		fresh = append(fresh, model.NewsItem{
			Headline:    h.Title,
			URL:         h.URL,
			Source:      h.Source,
			PublishedAt: h.PublishedAt,
		})
	}

	var inserted int
	if len(fresh) > 0 {
		var err error
		inserted, err = s.store.InsertBatch(ctx, fresh)
		if err != nil {
			return model.IngestReport{}, fmt.Errorf("inserting headlines: %w", err)
		}
	}

	deleted, err := s.store.TrimToLatest(ctx, model.RetentionLimit)
	if err != nil {
		return model.IngestReport{}, fmt.Errorf("trimming stored headlines: %w", err)
	}

	total, err := s.store.Count(ctx)
	if err != nil {
		return model.IngestReport{}, fmt.Errorf("counting stored headlines: %w", err)
	}

	return model.IngestReport{Inserted: inserted, Deleted: deleted, TotalStored: total}, nil
}

func (s *IngestService) fetch(ctx context.Context) []news.Headline {
	for _, client := range s.clients {
		headlines, err := client.Fetch(ctx, fetchBatchSize)
		if err != nil {
			slog.Error("error fetching headlines", "source", client.Name(), "error", err)
			continue
		}
		if len(headlines) == 0 {
			slog.Warn("provider returned no headlines", "source", client.Name())
			continue
		}
		return headlines
	}

	slog.Warn("no provider delivered headlines, using built-in fallback set")
	return news.Fallback()
}
