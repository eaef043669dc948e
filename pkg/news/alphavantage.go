package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const alphaVantageBaseURL = "https://www.alphavantage.co"

type AlphaVantageClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewAlphaVantageClient(apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		apiKey:     apiKey,
		baseURL:    alphaVantageBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

func (c *AlphaVantageClient) Fetch(ctx context.Context, limit int) ([]Headline, error) {
	url := fmt.Sprintf(
		"%s/query?function=NEWS_SENTIMENT&limit=%d&sort=LATEST&apikey=%s",
		c.baseURL, limit, c.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("alphavantage request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("alphavantage fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw avResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("alphavantage decode: %w", err)
	}

	headlines := make([]Headline, 0, len(raw.Feed))
	for _, item := range raw.Feed {
		if item.Title == "" {
			continue
		}

		if len(headlines) >= limit {
			break
		}

		publishedAt, err := time.Parse("20060102T150405", item.TimePublished)
		if err != nil {
			publishedAt = time.Time{}
		}

		headlines = append(headlines, Headline{
			Title:       item.Title,
			URL:         item.URL,
			Source:      item.Source,
			PublishedAt: publishedAt,
		})
	}

	return headlines, nil
}

type avResponse struct {
	Feed []avFeedItem `json:"feed"`
}

type avFeedItem struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Source        string `json:"source"`
	TimePublished string `json:"time_published"`
}
