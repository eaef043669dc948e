package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Harshaaa-a/finbuddychatbot-sub000/pkg/analyzer"
	"github.com/Harshaaa-a/finbuddychatbot-sub000/pkg/llm"
	"github.com/Harshaaa-a/finbuddychatbot-sub000/pkg/prompt"
)

const (
	newsContextLimit   = 3
	newsContextTimeout = 5 * time.Second
)

type ChatInput struct {
	Message string
	History []prompt.HistoryMessage
}

type ChatService struct {
	store      NewsStore
	generators []llm.Generator
	persona    string
}

func NewChatService(store NewsStore, generators []llm.Generator) *ChatService {
	return &ChatService{
		store:      store,
		generators: generators,
		persona:    prompt.DefaultPersona,
	}
}

// Chat answers one user message. News lookup and generation failures are
// absorbed: the store read degrades to an empty context and a total generator
// failure degrades to a canned answer. Only invalid input or a cancelled
// request context produce an error.
func (s *ChatService) Chat(ctx context.Context, input ChatInput) (string, error) {
	if err := prompt.ValidateMessage(input.Message); err != nil {
		return "", err
	}

	var snippets []prompt.NewsSnippet
	if analyzer.RequiresNewsContext(input.Message) {
		snippets = s.newsContext(ctx)
	}

	p := prompt.Build(s.persona, snippets, input.History, input.Message)

	for _, g := range s.generators {
		text, err := g.Generate(ctx, p)
		if err != nil {
			slog.Warn("generation failed", "provider", g.Name(), "error", err)
			continue
		}
		return text, nil
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	slog.Info("all generators failed, serving rule-based answer")
	return llm.FallbackAnswer(input.Message), nil
}

func (s *ChatService) newsContext(ctx context.Context) []prompt.NewsSnippet {
	nctx, cancel := context.WithTimeout(ctx, newsContextTimeout)
	defer cancel()

	items, err := s.store.GetLatest(nctx, newsContextLimit)
	if err != nil {
		slog.Warn("news context unavailable, continuing without", "error", err)
		return nil
	}

	snippets := make([]prompt.NewsSnippet, 0, len(items))
	for _, item := range items {
		snippets = append(snippets, prompt.NewsSnippet{
			Headline: item.Headline,
			Source:   item.Source,
		})
	}
	return snippets
}
