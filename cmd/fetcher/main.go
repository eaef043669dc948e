package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Harshaaa-a/finbuddychatbot-sub000/db"
	"github.com/Harshaaa-a/finbuddychatbot-sub000/internal/repository"
	"github.com/Harshaaa-a/finbuddychatbot-sub000/internal/service"
	"github.com/Harshaaa-a/finbuddychatbot-sub000/pkg/news"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect(os.Getenv("DATABASE_URL"), db.DefaultPoolConfig())
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var clients []news.Client
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		clients = append(clients, news.NewFinnHubClient(key))
	}
	if key := os.Getenv("ALPHA_VANTAGE_API_KEY"); key != "" {
		clients = append(clients, news.NewAlphaVantageClient(key))
	}

	if len(clients) == 0 {
		slog.Warn("no news source API keys configured, fallback headlines will be stored")
	}

	repo := repository.NewNewsRepository(db.DB)
	ingest := service.NewIngestService(repo, clients)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report, err := ingest.Ingest(ctx)
	if err != nil {
		log.Fatalf("error running ingestion: %v", err)
	}

	slog.Info("ingestion complete",
		"inserted", report.Inserted,
		"deleted", report.Deleted,
		"total_stored", report.TotalStored,
	)
}
