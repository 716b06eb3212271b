package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"creatorscore/internal/domain"
)

// MediaRepositoryPG implements MediaRepository using PostgreSQL.
type MediaRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewMediaRepository constructs the repository.
func NewMediaRepository(pool *pgxpool.Pool) *MediaRepositoryPG {
	return &MediaRepositoryPG{pool: pool}
}

// RecentMedia returns up to limit posts with non-empty media URLs, newest first.
func (r *MediaRepositoryPG) RecentMedia(ctx context.Context, profileID string, limit int) ([]domain.MediaItem, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, profile_id, kind, COALESCE(caption, ''), media_url, posted_at
FROM media_items
WHERE profile_id = $1 AND media_url <> ''
ORDER BY posted_at DESC
LIMIT $2;
`, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("recent media: %w", err)
	}
	defer rows.Close()

	var out []domain.MediaItem
	for rows.Next() {
		var m domain.MediaItem
		if err := rows.Scan(&m.ID, &m.ProfileID, &m.Kind, &m.Caption, &m.MediaURL, &m.PostedAt); err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// InsightsInWindow joins each post published in the trailing window to its
// most recent insight row.
func (r *MediaRepositoryPG) InsightsInWindow(ctx context.Context, profileID string, days int) ([]domain.MediaWithInsight, error) {
	rows, err := r.pool.Query(ctx, `
SELECT m.id, m.profile_id, m.kind, COALESCE(m.caption, ''), m.media_url, m.posted_at,
       i.fetched_at, i.reach, i.likes, i.comments, i.saves, i.shares, i.video_views, i.video_completions
FROM media_items m
JOIN LATERAL (
    SELECT fetched_at, reach, likes, comments, saves, shares, video_views, video_completions
    FROM media_insights
    WHERE media_id = m.id
    ORDER BY fetched_at DESC
    LIMIT 1
) i ON true
WHERE m.profile_id = $1 AND m.posted_at >= now() - make_interval(days => $2)
ORDER BY m.posted_at DESC;
`, profileID, days)
	if err != nil {
		return nil, fmt.Errorf("insights in window: %w", err)
	}
	defer rows.Close()

	var out []domain.MediaWithInsight
	for rows.Next() {
		var row domain.MediaWithInsight
		if err := rows.Scan(
			&row.Media.ID,
			&row.Media.ProfileID,
			&row.Media.Kind,
			&row.Media.Caption,
			&row.Media.MediaURL,
			&row.Media.PostedAt,
			&row.Insight.FetchedAt,
			&row.Insight.Reach,
			&row.Insight.Likes,
			&row.Insight.Comments,
			&row.Insight.Saves,
			&row.Insight.Shares,
			&row.Insight.VideoViews,
			&row.Insight.VideoCompletions,
		); err != nil {
			return nil, fmt.Errorf("scan insight: %w", err)
		}
		row.Insight.MediaID = row.Media.ID
		out = append(out, row)
	}
	return out, rows.Err()
}
