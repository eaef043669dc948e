package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Harshaaa-a/finbuddychatbot-sub000/internal/model"

	"github.com/lib/pq"
)

type NewsRepository struct {
	db *sql.DB
}

func NewNewsRepository(db *sql.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// InsertBatch stores all items in a single statement and returns the number
// of rows inserted. Empty url/source and zero published_at become NULL.
func (r *NewsRepository) InsertBatch(ctx context.Context, items []model.NewsItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	headlines := make([]string, len(items))
	urls := make([]string, len(items))
	sources := make([]string, len(items))
	publishedAts := make([]time.Time, len(items))
	for i, item := range items {
		headlines[i] = item.Headline
		urls[i] = item.URL
		sources[i] = item.Source
		publishedAts[i] = item.PublishedAt
	}

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO news_item(headline, url, source, published_at)
		SELECT t.headline, NULLIF(t.url, ''), NULLIF(t.source, ''),
			NULLIF(t.published_at, '0001-01-01 00:00:00+00'::timestamptz)
		FROM unnest($1::text[], $2::text[], $3::text[], $4::timestamptz[])
			AS t(headline, url, source, published_at)
	`, pq.Array(headlines), pq.Array(urls), pq.Array(sources), pq.Array(publishedAts))

	if err != nil {
		return 0, err
	}

	inserted, err := res.RowsAffected()
	return int(inserted), err
}

func (r *NewsRepository) ExistsByHeadline(ctx context.Context, headline string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM news_item WHERE headline = $1)
	`, headline).Scan(&exists)
	return exists, err
}

func (r *NewsRepository) GetLatest(ctx context.Context, limit int) ([]model.NewsItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, headline, COALESCE(url, ''), COALESCE(source, ''),
			COALESCE(published_at, '0001-01-01 00:00:00+00'::timestamptz), created_at
		FROM news_item
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.NewsItem
	for rows.Next() {
		var item model.NewsItem
		err := rows.Scan(&item.ID, &item.Headline, &item.URL, &item.Source, &item.PublishedAt, &item.CreatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// TrimToLatest deletes everything outside the newest n items by created_at
// and returns the number of rows deleted.
func (r *NewsRepository) TrimToLatest(ctx context.Context, n int) (int, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM news_item
		WHERE id NOT IN (
			SELECT id FROM news_item
			ORDER BY created_at DESC, id DESC
			LIMIT $1
		)
	`, n)

	if err != nil {
		return 0, err
	}

	deleted, err := res.RowsAffected()
	return int(deleted), err
}

func (r *NewsRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM news_item
	`).Scan(&total)
	return total, err
}
