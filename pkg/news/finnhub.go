package news

import (
	"context"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnHubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{client: client}
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

func (c *FinnHubClient) Fetch(ctx context.Context, limit int) ([]Headline, error) {
	res, _, err := c.client.MarketNews(ctx).Category("general").Execute()
	if err != nil {
		return nil, err
	}

	var headlines []Headline

	for _, item := range res {
		if len(headlines) >= limit {
			break
		}

		var h Headline

		if item.Headline != nil {
			h.Title = *item.Headline
		}

		if h.Title == "" {
			continue
		}

		if item.Url != nil {
			h.URL = *item.Url
		}

		if item.Source != nil {
			h.Source = *item.Source
		}

		if item.Datetime != nil {
			h.PublishedAt = time.Unix(*item.Datetime, 0)
		}

		headlines = append(headlines, h)
	}

	return headlines, nil
}
