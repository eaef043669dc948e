package news

import "time"

// Fallback returns a built-in headline set used when no provider is configured
// or every provider fails. Ingestion stays best-effort: storing something
// generic beats failing the whole cycle.
func Fallback() []Headline {
	now := time.Now()
	return []Headline{
		{
			Title:       "Markets trade mixed as investors weigh interest rate outlook",
			Source:      "Market Desk",
			PublishedAt: now,
		},
		{
			Title:       "Mutual fund inflows stay steady amid volatile equity markets",
			Source:      "Market Desk",
			PublishedAt: now,
		},
		{
			Title:       "RBI holds repo rate, keeps stance unchanged",
			Source:      "Market Desk",
			PublishedAt: now,
		},
		{
			Title:       "Gold prices edge higher on safe-haven demand",
			Source:      "Market Desk",
			PublishedAt: now,
		},
		{
			Title:       "IT stocks lead gains as global tech sentiment improves",
			Source:      "Market Desk",
			PublishedAt: now,
		},
	}
}
