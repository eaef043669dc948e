package news

import (
	"context"
	"time"
)

type Headline struct {
	Title       string
	URL         string
	Source      string
	PublishedAt time.Time
}

type Client interface {
	Fetch(ctx context.Context, limit int) ([]Headline, error)
	Name() string
}
