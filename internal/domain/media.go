package domain

import "time"

// MediaKind is the post format reported by the platform.
type MediaKind string

const (
	MediaImage    MediaKind = "image"
	MediaVideo    MediaKind = "video"
	MediaReel     MediaKind = "reel"
	MediaCarousel MediaKind = "carousel"
)

// MediaItem is one published post.
type MediaItem struct {
	ID        string
	ProfileID string
	Kind      MediaKind
	Caption   string
	MediaURL  string
	PostedAt  time.Time
}

// MediaInsight holds the per-post metrics fetched for a MediaItem. Rows are
// append-only per fetch cycle; FetchedAt orders them.
type MediaInsight struct {
	MediaID          string
	FetchedAt        time.Time
	Reach            int
	Likes            int
	Comments         int
	Saves            int
	Shares           int
	VideoViews       int
	VideoCompletions int
}

// MediaWithInsight joins a post to its most recent insight row.
type MediaWithInsight struct {
	Media   MediaItem
	Insight MediaInsight
}
