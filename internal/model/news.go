package model

import "time"

// RetentionLimit is the number of news items kept after each ingestion cycle.
const RetentionLimit = 10

type NewsItem struct {
	ID          int64
	Headline    string
	URL         string
	Source      string
	PublishedAt time.Time
	CreatedAt   time.Time
}

type IngestReport struct {
	Inserted    int
	Deleted     int
	TotalStored int
}
