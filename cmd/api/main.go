package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Harshaaa-a/finbuddychatbot-sub000/db"
	"github.com/Harshaaa-a/finbuddychatbot-sub000/internal/handler"
	"github.com/Harshaaa-a/finbuddychatbot-sub000/internal/repository"
	"github.com/Harshaaa-a/finbuddychatbot-sub000/internal/service"
	"github.com/Harshaaa-a/finbuddychatbot-sub000/pkg/llm"
	"github.com/Harshaaa-a/finbuddychatbot-sub000/pkg/news"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

type Config struct {
	Port               string        `env:"PORT" envDefault:"8080"`
	DatabaseURL        string        `env:"DATABASE_URL"`
	RedisURL           string        `env:"REDIS_URL"`
	OpenAIAPIKey       string        `env:"OPENAI_API_KEY"`
	AnthropicAPIKey    string        `env:"ANTHROPIC_API_KEY"`
	FinnhubAPIKey      string        `env:"FINNHUB_API_KEY"`
	AlphaVantageAPIKey string        `env:"ALPHA_VANTAGE_API_KEY"`
	RateLimit          int64         `env:"RATE_LIMIT" envDefault:"10"`
	RateWindow         time.Duration `env:"RATE_WINDOW" envDefault:"60s"`
	DBPool             db.PoolConfig
}

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	err := db.Connect(cfg.DatabaseURL, cfg.DBPool)
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var counterStore handler.CounterStore
	if cfg.RedisURL != "" {
		if err := db.ConnectRedis(); err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer db.CloseRedis()
		counterStore = handler.NewRedisCounterStore()
	} else {
		counterStore = handler.NewMemoryCounterStore()
	}
	limiter := handler.NewLimiter(counterStore, cfg.RateLimit, cfg.RateWindow)

	var generators []llm.Generator
	if cfg.OpenAIAPIKey != "" {
		generators = append(generators, llm.NewOpenAIClient(cfg.OpenAIAPIKey))
	}
	if cfg.AnthropicAPIKey != "" {
		generators = append(generators, llm.NewAnthropicClient(cfg.AnthropicAPIKey))
	}
	if len(generators) == 0 {
		slog.Warn("no generation API keys configured, serving rule-based answers only")
	}

	var clients []news.Client
	if cfg.FinnhubAPIKey != "" {
		clients = append(clients, news.NewFinnHubClient(cfg.FinnhubAPIKey))
	}
	if cfg.AlphaVantageAPIKey != "" {
		clients = append(clients, news.NewAlphaVantageClient(cfg.AlphaVantageAPIKey))
	}

	newsRepo := repository.NewNewsRepository(db.DB)
	chatService := service.NewChatService(newsRepo, generators)
	ingestService := service.NewIngestService(newsRepo, clients)

	chatHandler := handler.NewChatHandler(chatService, limiter)
	newsHandler := handler.NewNewsHandler(ingestService, newsRepo)

	r := handler.NewRouter(chatHandler, newsHandler)

	err = r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
