package domain

import "context"

// ProfileRepository resolves creator identities.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*Profile, error)
}

// SnapshotRepository reads analysis snapshots. LatestValid returns the most
// recent snapshot with genuine analysis data (posts_analyzed > 0), falling
// back to the newest partial snapshot; ErrNoSnapshot when none exists.
type SnapshotRepository interface {
	LatestValid(ctx context.Context, profileID string) (*Snapshot, error)
	RecentAnalyzed(ctx context.Context, profileID string, limit int) ([]Snapshot, error)
}

// MediaRepository reads posts and their insight rows.
type MediaRepository interface {
	RecentMedia(ctx context.Context, profileID string, limit int) ([]MediaItem, error)
	InsightsInWindow(ctx context.Context, profileID string, days int) ([]MediaWithInsight, error)
}

// GrowthRepository reads daily follower records.
type GrowthRepository interface {
	SnapshotsInWindow(ctx context.Context, profileID string, days int) ([]GrowthSnapshot, error)
}
